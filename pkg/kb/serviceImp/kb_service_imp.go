package serviceImp

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	"cropyield/entities"
	"cropyield/pkg/kb/repository"
	"cropyield/pkg/kb/service"
)

const chunkRunes = 1000

var ErrEmptyDocument = errors.New("kb: title and text are required")

type Svc struct{ r repository.KBRepository }

var _ service.KBService = (*Svc)(nil)

func New(r repository.KBRepository) *Svc { return &Svc{r: r} }

// chunkText cuts text into pieces of roughly maxRunes, breaking on newlines
// once the limit is reached.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = chunkRunes
	}
	var parts []string
	var cur strings.Builder
	count := 0
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			parts = append(parts, s)
		}
		cur.Reset()
		count = 0
	}
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			flush()
		}
	}
	flush()
	return parts
}

func (s *Svc) UpsertDocument(title, tags, text, sourceURL string) (*entities.KBDocument, int, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(text) == "" {
		return nil, 0, ErrEmptyDocument
	}
	d := &entities.KBDocument{Title: title, Tags: strings.TrimSpace(tags), SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, chunkRunes)
	rows := make([]entities.KBChunk, len(chs))
	for i := range chs {
		rows[i] = entities.KBChunk{DocID: d.DocID, Ord: i, Text: chs[i]}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

// terms lowercases q and splits it on anything that is not a letter or digit.
// Words shorter than three runes are dropped.
func terms(q string) []string {
	seen := map[string]bool{}
	var out []string
	for _, w := range strings.FieldsFunc(strings.ToLower(q), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len([]rune(w)) < 3 || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

type scored struct {
	ch entities.KBChunk
	sc int
}

// rank scores every chunk by the number of query terms found in its text, plus
// one per term found in the owning document's title or tags. Chunks that match
// nothing are dropped.
func (s *Svc) rank(query string) ([]scored, map[uint]entities.KBDocument, error) {
	ts := terms(query)
	if len(ts) == 0 {
		return nil, nil, nil
	}
	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, nil, err
	}
	if len(chunks) == 0 {
		return nil, nil, nil
	}
	docs, err := s.r.ListDocs()
	if err != nil {
		return nil, nil, err
	}
	meta := make(map[uint]entities.KBDocument, len(docs))
	for _, d := range docs {
		meta[d.DocID] = d
	}

	var out []scored
	for _, ch := range chunks {
		text := strings.ToLower(ch.Text)
		d := meta[ch.DocID]
		head := strings.ToLower(d.Title + " " + d.Tags)
		sc := 0
		for _, t := range ts {
			if strings.Contains(text, t) {
				sc++
			}
			if strings.Contains(head, t) {
				sc++
			}
		}
		if sc > 0 {
			out = append(out, scored{ch: ch, sc: sc})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].sc > out[j].sc })
	return out, meta, nil
}

func (s *Svc) Search(query string, k int) ([]entities.KBChunk, error) {
	if k <= 0 {
		return nil, nil
	}
	ranked, _, err := s.rank(query)
	if err != nil {
		return nil, err
	}
	k = min(k, len(ranked))
	out := make([]entities.KBChunk, 0, k)
	for _, r := range ranked[:k] {
		out = append(out, r.ch)
	}
	return out, nil
}

// Suggest returns up to k distinct documents for query, best match first.
func (s *Svc) Suggest(query string, k int) ([]entities.ArticleRef, error) {
	if k <= 0 {
		return nil, nil
	}
	ranked, meta, err := s.rank(query)
	if err != nil {
		return nil, err
	}
	seen := map[uint]bool{}
	var out []entities.ArticleRef
	for _, r := range ranked {
		if seen[r.ch.DocID] {
			continue
		}
		seen[r.ch.DocID] = true
		d := meta[r.ch.DocID]
		out = append(out, entities.ArticleRef{DocID: d.DocID, Title: d.Title, URL: d.SourceURL})
		if len(out) == k {
			break
		}
	}
	return out, nil
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.KBDocument, error) {
	return s.r.DocsByIDs(ids)
}

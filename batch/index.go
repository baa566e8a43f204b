package batch

import (
	"cmp"
	"context"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/arloliu/symts/sax"
)

// WordIndex groups series ids by their exact word, so series that share a
// shape can be found without comparing every pair.
//
// Words are matched with sax.Word.Equal: series length is ignored. A
// WordIndex is not safe for concurrent use.
type WordIndex struct {
	buckets map[uint64][]posting
	words   int
}

type posting struct {
	word sax.Word
	ids  *roaring.Bitmap
}

// Motif is a word shared by several series.
type Motif struct {
	Word sax.Word
	IDs  []uint32
}

// NewWordIndex creates an empty index.
func NewWordIndex() *WordIndex {
	return &WordIndex{buckets: make(map[uint64][]posting)}
}

// Add records that series id encodes to word.
func (x *WordIndex) Add(id uint32, word sax.Word) {
	key := word.Fingerprint()
	bucket := x.buckets[key]
	for _, p := range bucket {
		if p.word.Equal(word) {
			p.ids.Add(id)
			return
		}
	}

	ids := roaring.New()
	ids.Add(id)
	x.buckets[key] = append(bucket, posting{word: word.Clone(), ids: ids})
	x.words++
}

// Lookup returns the ids recorded for word in ascending order.
func (x *WordIndex) Lookup(word sax.Word) []uint32 {
	for _, p := range x.buckets[word.Fingerprint()] {
		if p.word.Equal(word) {
			return p.ids.ToArray()
		}
	}

	return nil
}

// Len returns the number of distinct words.
func (x *WordIndex) Len() int {
	return x.words
}

// Motifs returns the words recorded for at least minCount series, most
// frequent first. Equal counts are ordered by word text.
func (x *WordIndex) Motifs(minCount int) []Motif {
	var out []Motif
	for _, bucket := range x.buckets {
		for _, p := range bucket {
			if p.ids.GetCardinality() < uint64(max(minCount, 1)) { //nolint:gosec // non-negative
				continue
			}
			out = append(out, Motif{Word: p.word.Clone(), IDs: p.ids.ToArray()})
		}
	}

	slices.SortFunc(out, func(a, b Motif) int {
		if c := cmp.Compare(len(b.IDs), len(a.IDs)); c != 0 {
			return c
		}

		return cmp.Compare(a.Word.String(), b.Word.String())
	})

	return out
}

// Index encodes every series and groups the series indices by word.
func (e *Encoder) Index(ctx context.Context, series [][]float64, w, c int) (*WordIndex, error) {
	words, err := e.EncodeAll(ctx, series, w, c)
	if err != nil {
		return nil, err
	}

	idx := NewWordIndex()
	for i, word := range words {
		idx.Add(uint32(i), word) //nolint:gosec // batch sizes stay far below 2^32
	}
	e.cfg.logger.Debug("indexed batch", "series", len(series), "words", idx.Len(), "w", w, "c", c)

	return idx, nil
}

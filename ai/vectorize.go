package ai

import (
	"hash/fnv"
	"math"
	"sort"
	"strings"
)

// Vectorizer transforms normalized text into fixed-size numerical features.
// It uses the hashing trick to map word n-grams to vector slots, with TF-IDF
// weighting learned at fit time. All fields are exported for artifact
// serialization; a fitted vectorizer is never mutated again.
type Vectorizer struct {
	Size     int         `json:"size"`
	NGramMax int         `json:"ngram_max"`
	DocCount int         `json:"doc_count"`
	DocFreq  map[int]int `json:"doc_freq"`
	Fitted   bool        `json:"fitted"`
}

const (
	defaultFeatureSize = 1 << 14
	defaultNGramMax    = 2
)

// stopWords are dropped before hashing; they dominate term frequencies
// without carrying abuse signal.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "no": {}, "not": {}, "of": {}, "on": {}, "or": {}, "such": {},
	"that": {}, "the": {}, "their": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "to": {}, "was": {}, "will": {}, "with": {},
}

func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		Size:     defaultFeatureSize,
		NGramMax: defaultNGramMax,
		DocFreq:  make(map[int]int),
	}
}

// Fit learns document frequencies over the corpus. Deterministic: the same
// corpus always produces the same fitted state.
func (v *Vectorizer) Fit(texts []string) {
	v.DocFreq = make(map[int]int)
	v.DocCount = len(texts)

	for _, text := range texts {
		seen := make(map[int]struct{})
		for _, slot := range v.slots(text) {
			seen[slot] = struct{}{}
		}
		for slot := range seen {
			v.DocFreq[slot]++
		}
	}
	v.Fitted = true
}

// Transform emits an L2-normalized sparse tf-idf vector. Before fitting it
// degrades to plain binary term presence, the robust choice for short chat
// messages.
func (v *Vectorizer) Transform(text string) map[int]float64 {
	vec := make(map[int]float64)
	for _, slot := range v.slots(text) {
		vec[slot]++
	}
	if len(vec) == 0 {
		return vec
	}

	if v.Fitted {
		for slot, tf := range vec {
			vec[slot] = tf * v.idf(slot)
		}
	} else {
		for slot := range vec {
			vec[slot] = 1.0
		}
	}

	// Accumulate the norm in sorted slot order. Float addition is not
	// associative and map iteration order would make repeated transforms
	// of the same text differ in the last bits.
	keys := make([]int, 0, len(vec))
	for slot := range vec {
		keys = append(keys, slot)
	}
	sort.Ints(keys)
	var norm float64
	for _, slot := range keys {
		norm += vec[slot] * vec[slot]
	}
	norm = math.Sqrt(norm)
	for slot, w := range vec {
		vec[slot] = w / norm
	}
	return vec
}

// idf uses the smoothed formulation, so unseen slots still get a finite
// weight instead of a division by zero.
func (v *Vectorizer) idf(slot int) float64 {
	df := v.DocFreq[slot]
	return math.Log(float64(1+v.DocCount)/float64(1+df)) + 1
}

// slots tokenizes lowercased text into unigrams and bigrams, dropping
// stopword unigrams, and hashes each n-gram to a feature slot.
// Punctuation survives on purpose: "f*ck" is a different signal than "fck".
func (v *Vectorizer) slots(text string) []int {
	words := strings.Fields(strings.ToLower(text))

	var slots []int
	for i, w := range words {
		if _, stop := stopWords[w]; !stop {
			slots = append(slots, v.hash(w))
		}
		for n := 2; n <= v.NGramMax && i+n <= len(words); n++ {
			slots = append(slots, v.hash(strings.Join(words[i:i+n], " ")))
		}
	}
	return slots
}

func (v *Vectorizer) hash(ngram string) int {
	h := fnv.New32a()
	h.Write([]byte(ngram))
	return int(h.Sum32()) % v.Size
}

package match

import (
	"cmp"
	"slices"
	"strings"

	"yamlsimple/internal/keypath"
)

// MinSimilarity is the score below which a key-path is not suggested.
const MinSimilarity = 0.6

type scored struct {
	key   string
	score float64
}

// Suggest returns up to limit candidates closest to key, best first. The
// score of a candidate is the better of its whole-path similarity and, when
// both share a parent, the similarity of their leaves. Case, "_" and "-"
// are ignored.
func Suggest(key string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	want := normalize(key)
	wantParent, wantLeaf := splitLeaf(want)

	var ranked []scored

	for _, c := range candidates {
		if c == key {
			continue
		}

		norm := normalize(c)
		score := Similarity(want, norm)

		if parent, leaf := splitLeaf(norm); parent == wantParent {
			score = max(score, Similarity(wantLeaf, leaf))
		}

		if score >= MinSimilarity {
			ranked = append(ranked, scored{key: c, score: score})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked[:min(limit, len(ranked))] {
		out = append(out, r.key)
	}

	return out
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("_", "", "-", "").Replace(s)
}

func splitLeaf(s string) (string, string) {
	i := strings.LastIndex(s, keypath.Separator)
	if i < 0 {
		return "", s
	}

	return s[:i], s[i+1:]
}

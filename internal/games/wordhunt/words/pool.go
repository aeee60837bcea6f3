package words

import (
	"math/rand"

	"github.com/vovakirdan/wordhunt/internal/games/wordhunt/core"
)

// Pool is the word selection of one level.
type Pool struct {
	Targets []string
	Decoys  []string
}

// lookalikes maps letters onto letters that are easy to misread at a glance.
var lookalikes = map[byte][]byte{
	'A': {'R', 'H'},
	'B': {'D', 'P', 'R'},
	'C': {'G', 'O'},
	'D': {'B', 'O'},
	'E': {'F', 'B'},
	'F': {'E', 'P'},
	'G': {'C', 'Q'},
	'H': {'N', 'A'},
	'I': {'L', 'T'},
	'J': {'I'},
	'K': {'X', 'R'},
	'L': {'I', 'T'},
	'M': {'N', 'W'},
	'N': {'M', 'H'},
	'O': {'Q', 'D', 'C'},
	'P': {'R', 'B'},
	'Q': {'O', 'G'},
	'R': {'P', 'B'},
	'S': {'Z', 'B'},
	'T': {'I', 'Y'},
	'U': {'V'},
	'V': {'U', 'Y'},
	'W': {'M', 'V'},
	'X': {'K', 'Y'},
	'Y': {'V', 'T'},
	'Z': {'S'},
}

// decoyAttempts bounds the mutation search for one decoy.
const decoyAttempts = 20

// SelectPool picks the targets and decoys of a level. Targets are distinct
// words within the level's length bounds; when the list is too small the
// bounds widen. About one decoy is produced per three targets, each a
// single-letter mutation of a target that is not itself a listed word.
func (l *List) SelectPool(p core.LevelParameters, rng *rand.Rand) Pool {
	var pool Pool

	minLen, maxLen := p.MinLength, p.MaxLength
	candidates := l.WithLength(minLen, maxLen)
	for len(candidates) < p.TargetWords && (minLen > MinWordLength || maxLen < MaxWordLength) {
		minLen = max(MinWordLength, minLen-1)
		maxLen = min(MaxWordLength, maxLen+1)
		candidates = l.WithLength(minLen, maxLen)
	}

	for _, i := range rng.Perm(len(candidates)) {
		if len(pool.Targets) == p.TargetWords {
			break
		}
		pool.Targets = append(pool.Targets, candidates[i])
	}
	if len(pool.Targets) == 0 {
		return pool
	}

	taken := make(map[string]struct{}, len(pool.Targets))
	for _, t := range pool.Targets {
		taken[t] = struct{}{}
	}

	want := max(1, p.TargetWords/3)
	for i := 0; i < want; i++ {
		source := pool.Targets[rng.Intn(len(pool.Targets))]
		d, ok := l.Decoy(source, rng)
		if !ok {
			continue
		}
		if _, dup := taken[d]; dup {
			continue
		}
		taken[d] = struct{}{}
		pool.Decoys = append(pool.Decoys, d)
	}
	return pool
}

// Decoy mutates one letter of word into a look-alike, producing a string
// that is not in the list. It gives up after a bounded number of attempts.
func (l *List) Decoy(word string, rng *rand.Rand) (string, bool) {
	if word == "" {
		return "", false
	}

	for attempt := 0; attempt < decoyAttempts; attempt++ {
		b := []byte(word)
		i := rng.Intn(len(b))

		if alts := lookalikes[b[i]]; len(alts) > 0 && attempt < decoyAttempts/2 {
			b[i] = alts[rng.Intn(len(alts))]
		} else {
			b[i] = byte('A' + rng.Intn(26))
		}

		d := string(b)
		if d != word && isAlpha(d) && !l.Contains(d) {
			return d, true
		}
	}
	return "", false
}

// Package replay records the per-tick inputs of a game and plays them back.
// A seed, a grid size, a config and the input stream fully determine a run.
package replay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrBadEncoding is returned when recorded input text cannot be decoded.
var ErrBadEncoding = errors.New("replay: bad input encoding")

// Encode run-length compresses inputs as <count><code> pairs, e.g. "1U7.".
func Encode(inputs []core.UserInput) string {
	var sb strings.Builder
	for i := 0; i < len(inputs); {
		j := i
		for j < len(inputs) && inputs[j] == inputs[i] {
			j++
		}
		sb.WriteString(strconv.Itoa(j - i))
		sb.WriteByte(inputs[i].Code())
		i = j
	}
	return sb.String()
}

// Decode expands text produced by Encode.
func Decode(text string) ([]core.UserInput, error) {
	var inputs []core.UserInput
	count := 0
	digits := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= '0' && c <= '9' {
			count = count*10 + int(c-'0')
			digits++
			if digits > 9 {
				return nil, fmt.Errorf("%w: run too long at offset %d", ErrBadEncoding, i)
			}
			continue
		}

		if digits == 0 || count == 0 {
			return nil, fmt.Errorf("%w: missing count before %q at offset %d", ErrBadEncoding, c, i)
		}
		in, err := core.ParseInputCode(c)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
		}
		for range count {
			inputs = append(inputs, in)
		}
		count, digits = 0, 0
	}

	if digits > 0 {
		return nil, fmt.Errorf("%w: trailing count %d", ErrBadEncoding, count)
	}
	return inputs, nil
}

package pattern

import (
	"fmt"
	"strings"
	"unicode"

	"sparselife/src/life"
)

/*
	RLE is the run-length encoded pattern format used by most cellular
	automaton collections: an optional repeat count followed by one token,
	where 'b' is a run of dead cells, 'o' a run of live cells, '$' ends the
	row and '!' ends the pattern. Whitespace is insignificant.
*/

//MalformedPatternError reports an unrecognized token in an RLE pattern body
//Offset is the position of the token in the whitespace-stripped input
type MalformedPatternError struct {
	Token  byte
	Offset int
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("malformed pattern: unrecognized token %q at offset %d", e.Token, e.Offset)
}

//DecodeRLE parses an RLE pattern body into a set of live cells
//the decode is forgiving: input may be truncated mid-run or miss the
//terminating '!' and still yields the cells accumulated so far;
//only an unrecognized token fails, with a *MalformedPatternError,
//because skipping it would shift every later cell in the same row
func DecodeRLE(input string) (life.CellSet, error) {
	body := stripSpace(input)
	cells := life.NewCellSet()
	x, y := 0, 0

	for i := 0; i < len(body); {
		count := 0
		hasCount := false
		for i < len(body) && body[i] >= '0' && body[i] <= '9' {
			count = count*10 + int(body[i]-'0')
			hasCount = true
			i++
		}
		if i == len(body) {
			//trailing digits with no token to repeat, decode just stops
			break
		}
		if !hasCount {
			count = 1
		}

		token := body[i]
		i++
		switch token {
		case 'b':
			x += count
		case 'o':
			for j := 0; j < count; j++ {
				cells.Add(life.Point{X: x, Y: y})
				x++
			}
		case '$':
			x = 0
			y += count
		case '!':
			return cells, nil
		default:
			return nil, &MalformedPatternError{Token: token, Offset: i - 1}
		}
	}
	return cells, nil
}

//stripSpace removes all whitespace from the pattern body
func stripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

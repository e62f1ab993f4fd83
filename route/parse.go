package route

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/hamroute/matrix"
)

// lineRx matches "<from> to <to> = <cost>". Labels are any run of
// non-space characters.
var lineRx = regexp.MustCompile(`^(\S+)\s+to\s+(\S+)\s*=\s*(\d+)$`)

// ParseLine parses a single connection line. Leading and trailing
// whitespace is ignored. Costs must fit in 32 bits so that the sum along
// any path fits comfortably in a Cost.
func ParseLine(line string) (Connection, error) {
	m := lineRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Connection{}, fmt.Errorf("%q: %w", line, ErrSyntax)
	}
	cost, err := strconv.ParseUint(m[3], 10, 32)
	if err != nil {
		return Connection{}, fmt.Errorf("%q: cost: %v: %w", line, err, ErrSyntax)
	}

	return Connection{From: m[1], To: m[2], Cost: matrix.Cost(cost)}, nil
}

// Parse reads one connection per line from r. Blank lines are skipped.
// Errors carry the 1-based line number.
func Parse(r io.Reader) ([]Connection, error) {
	var (
		conns []Connection
		s     = bufio.NewScanner(r)
		n     int
	)
	for s.Scan() {
		n++
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		conns = append(conns, c)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("route: reading input: %w", err)
	}

	return conns, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) ([]Connection, error) {
	return Parse(strings.NewReader(s))
}

// Format renders c in the form accepted by ParseLine.
func (c Connection) Format() string {
	return fmt.Sprintf("%s to %s = %d", c.From, c.To, c.Cost)
}

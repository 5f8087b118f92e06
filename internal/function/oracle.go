package function

import (
	"fmt"
	"regexp"
)

// RegexOracle answers the regular expression tests behind match() and
// search(). The engine hands over I-Regexp (RFC 9485) patterns verbatim;
// adapting them to the host regex facility is the oracle's concern.
//
// An oracle must be safe for concurrent use: a compiled query holds one and
// may be evaluated from multiple goroutines.
type RegexOracle interface {
	// Test reports whether pattern matches text. With anchored set the
	// pattern must cover the whole text, otherwise any substring may match.
	Test(pattern, text string, anchored bool) (bool, error)
}

// GoOracle is the default oracle, backed by the standard library's RE2
// engine. I-Regexp is close to a subset of RE2; the known divergences show
// up as compliance-suite skips, not engine behavior.
type GoOracle struct{}

func (GoOracle) Test(pattern, text string, anchored bool) (bool, error) {
	if anchored {
		pattern = "^(?:" + pattern + ")$"
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("compiling pattern: %w", err)
	}
	return re.MatchString(text), nil
}

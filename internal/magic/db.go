package magic

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cjbassi/mime-detective/pkg/mediatype"
)

// Magic database files are plain text, one rule per line:
//
//	<mime> <ext> <signature> [<signature>...]
//
// A signature is either a hex string (89504e470d0a1a0a) or a double-quoted
// ASCII literal ("ID3"). Lines starting with '#' and blank lines are
// ignored. A single malformed line fails the whole database.

// LoadDatabase reads and parses the magic database at path.
func LoadDatabase(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rules, err := ParseDatabase(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// ParseDatabase parses magic rules from r.
func ParseDatabase(r io.Reader) ([]Rule, error) {
	var rules []Rule

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rule, err := parseRule(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		rules = append(rules, rule)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}

func parseRule(line string) (Rule, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Rule{}, fmt.Errorf("expected <mime> <ext> <signature>..., got %q", line)
	}

	if _, err := mediatype.Parse(fields[0]); err != nil {
		return Rule{}, err
	}

	sigs := make([][]byte, 0, len(fields)-2)
	for _, tok := range fields[2:] {
		sig, err := parseSignature(tok)
		if err != nil {
			return Rule{}, err
		}
		sigs = append(sigs, sig)
	}

	return Rule{
		MIME:       fields[0],
		Ext:        strings.TrimPrefix(fields[1], "."),
		Signatures: sigs,
	}, nil
}

func parseSignature(tok string) ([]byte, error) {
	if strings.HasPrefix(tok, `"`) {
		if len(tok) < 3 || !strings.HasSuffix(tok, `"`) {
			return nil, fmt.Errorf("unterminated string signature %s", tok)
		}
		return []byte(tok[1 : len(tok)-1]), nil
	}

	sig, err := hex.DecodeString(tok)
	if err != nil {
		return nil, fmt.Errorf("invalid hex signature %q: %w", tok, err)
	}
	if len(sig) == 0 {
		return nil, fmt.Errorf("empty signature")
	}
	return sig, nil
}

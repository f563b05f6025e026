// Copyright (c) 2026 The mime-detective Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package magic

import (
	"github.com/cjbassi/mime-detective/pkg/table"
)

// Registry indexes magic rules by their signatures for prefix lookup
// against content. Rules loaded earlier take precedence over later ones
// when signatures of equal length match.
type Registry struct {
	table  *table.PrefixTable[rules]
	nSigs  int
	maxSig int
}

type rules []Rule

// NewRegistry returns an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		table: table.New[rules](),
	}
}

// Add indexes every signature of the rule.
func (r *Registry) Add(rule Rule) {
	for _, sig := range rule.Signatures {
		existing, _ := r.table.Get(sig)
		r.table.Insert(sig, append(existing, rule))
		r.nSigs++

		if len(sig) > r.maxSig {
			r.maxSig = len(sig)
		}
	}
}

// Match returns the rule whose signature is the longest prefix of data.
// When several rules share that signature, the first one added wins.
func (r *Registry) Match(data []byte) (Rule, bool) {
	if r.table.Size() == 0 {
		return Rule{}, false
	}

	matched, ok := r.table.Longest(data)
	if !ok || len(matched) == 0 {
		return Rule{}, false
	}
	return matched[0], true
}

// Signatures returns the number of indexed signatures.
func (r *Registry) Signatures() int {
	return r.nSigs
}

// MaxSignatureLen returns the length of the longest indexed signature.
func (r *Registry) MaxSignatureLen() int {
	return r.maxSig
}

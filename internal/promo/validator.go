// Package promo checks promo codes against code lists loaded at start-up.
//
// Each list is held as an exact set behind a bloom filter. Most misses
// are answered by the filter alone, so lookups against large lists only
// touch the map for the small share of codes the filter cannot rule out.
package promo

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
)

const (
	MinCodeLength = 4
	MaxCodeLength = 12

	falsePositiveRate = 0.01
)

// Validator checks promo codes against code lists loaded at start-up
type Validator struct {
	codeSets []*codeSet
	mu       sync.RWMutex
}

// codeSet is the codes loaded from a single source. The bloom filter
// answers most misses without touching the map.
type codeSet struct {
	source string
	codes  map[string]struct{}
	filter *bloom.BloomFilter
}

// sourceLoadResult holds the result of loading a single source
type sourceLoadResult struct {
	index int
	set   *codeSet
	err   error
}

// NewValidator creates a validator with no codes; every code is invalid
// until sources are loaded
func NewValidator() *Validator {
	return &Validator{
		codeSets: make([]*codeSet, 0),
	}
}

// LoadFromSources loads code lists concurrently and replaces the current
// sets. A source is an http(s) URL or a file path; gzip content is
// detected automatically. Returns error if any source fails to load.
func (v *Validator) LoadFromSources(ctx context.Context, sources []string) error {
	if len(sources) == 0 {
		return fmt.Errorf("no promo sources provided")
	}

	resultChan := make(chan sourceLoadResult, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(index int, source string) {
			defer wg.Done()

			set, err := loadSource(ctx, source)
			resultChan <- sourceLoadResult{index: index, set: set, err: err}
		}(i, src)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make([]sourceLoadResult, len(sources))
	for result := range resultChan {
		results[result.index] = result
	}

	for i, result := range results {
		if result.err != nil {
			return fmt.Errorf("failed to load promo source %d (%s): %w", i+1, sources[i], result.err)
		}
	}

	sets := make([]*codeSet, len(results))
	for i, result := range results {
		sets[i] = result.set
	}

	v.mu.Lock()
	v.codeSets = sets
	v.mu.Unlock()

	return nil
}

func loadSource(ctx context.Context, source string) (*codeSet, error) {
	var (
		codes map[string]struct{}
		err   error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		codes, err = loadFromURL(ctx, source)
	} else {
		codes, err = loadFromFile(source)
	}
	if err != nil {
		return nil, err
	}
	return newCodeSet(source, codes), nil
}

// loadFromURL downloads and parses a code list
func loadFromURL(ctx context.Context, url string) (map[string]struct{}, error) {
	client := &http.Client{
		Timeout: 2 * time.Minute,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download code list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return parseMaybeGzip(resp.Body)
}

func loadFromFile(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open code list: %w", err)
	}
	defer f.Close()

	return parseMaybeGzip(f)
}

// parseMaybeGzip sniffs the gzip magic number before parsing
func parseMaybeGzip(r io.Reader) (map[string]struct{}, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		return parseCodes(gz)
	}
	return parseCodes(br)
}

// parseCodes reads one code per line, upper-cased; blank lines are skipped
func parseCodes(r io.Reader) (map[string]struct{}, error) {
	codes := make(map[string]struct{})
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := normalize(scanner.Text())
		if line != "" {
			codes[line] = struct{}{}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading code list: %w", err)
	}

	return codes, nil
}

func newCodeSet(source string, codes map[string]struct{}) *codeSet {
	n := uint(len(codes))
	if n == 0 {
		n = 1
	}
	filter := bloom.NewWithEstimates(n, falsePositiveRate)
	for code := range codes {
		filter.AddString(code)
	}
	return &codeSet{source: source, codes: codes, filter: filter}
}

func (cs *codeSet) contains(code string) bool {
	if !cs.filter.TestString(code) {
		return false
	}
	_, ok := cs.codes[code]
	return ok
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValid checks if a promo code is valid
// A code is valid if:
// 1. It has 4-12 characters after trimming
// 2. It appears in at least one loaded code list (case-insensitive)
func (v *Validator) IsValid(ctx context.Context, code string) bool {
	code = normalize(code)
	if len(code) < MinCodeLength || len(code) > MaxCodeLength {
		return false
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, cs := range v.codeSets {
		if ctx.Err() != nil {
			return false
		}
		if cs.contains(code) {
			return true
		}
	}
	return false
}

// GetStats returns statistics about loaded code lists
func (v *Validator) GetStats() map[string]interface{} {
	v.mu.RLock()
	defer v.mu.RUnlock()

	stats := make(map[string]interface{})
	stats["total_sources"] = len(v.codeSets)

	sources := make([]string, len(v.codeSets))
	sizes := make([]int, len(v.codeSets))
	total := 0
	for i, cs := range v.codeSets {
		sources[i] = cs.source
		sizes[i] = len(cs.codes)
		total += len(cs.codes)
	}

	stats["sources"] = sources
	stats["set_sizes"] = sizes
	stats["total_codes"] = total

	return stats
}

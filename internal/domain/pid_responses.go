package domain

import (
	"encoding/json"
	"strings"
)

// PIDResponses maps request text to response lines. Keys keep the position
// of their first insertion; setting an existing key replaces its value.
type PIDResponses struct {
	keys   []string
	values map[string][]string
}

func NewPIDResponses() *PIDResponses {
	return &PIDResponses{values: map[string][]string{}}
}

func (p *PIDResponses) Set(request string, response []string) {
	if _, ok := p.values[request]; !ok {
		p.keys = append(p.keys, request)
	}
	p.values[request] = response
}

func (p *PIDResponses) Get(request string) ([]string, bool) {
	if p == nil {
		return nil, false
	}
	response, ok := p.values[request]
	return response, ok
}

// Lookup finds a request ignoring case. An exact match wins; otherwise the
// first inserted key equal under case folding is returned with its response.
func (p *PIDResponses) Lookup(request string) (PIDRecord, bool) {
	if p == nil {
		return PIDRecord{}, false
	}
	if response, ok := p.values[request]; ok {
		return PIDRecord{Request: request, Response: response}, true
	}
	for _, key := range p.keys {
		if strings.EqualFold(key, request) {
			return PIDRecord{Request: key, Response: p.values[key]}, true
		}
	}
	return PIDRecord{}, false
}

func (p *PIDResponses) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

func (p *PIDResponses) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Entries lists every request in insertion order.
func (p *PIDResponses) Entries() []PIDRecord {
	if p == nil {
		return []PIDRecord{}
	}

	entries := make([]PIDRecord, 0, len(p.keys))
	for _, key := range p.keys {
		entries = append(entries, PIDRecord{Request: key, Response: p.values[key]})
	}
	return entries
}

func (p *PIDResponses) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Entries())
}

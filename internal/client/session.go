package client

import (
	"net/url"
	"strconv"
	"sync"
)

// Session is the signed-in identity. Login and Register start one, Logout
// clears it.
type Session struct {
	mu      sync.RWMutex
	token   string
	account Account
}

func (s *Session) set(token string, account Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.account = account
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.account = Account{}
}

func (s *Session) Active() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Session) Account() Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

func (s *Session) IsAdmin() bool {
	return s.Account().Role == "admin"
}

func (s *Session) bearer() (string, bool) {
	if s == nil {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// PageQuery selects a page of a listing. Zero values leave the server
// defaults in place.
type PageQuery struct {
	Page   int
	Limit  int
	Status string
}

func (q PageQuery) encode() string {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

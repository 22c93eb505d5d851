package client

import (
	"context"
	"net/http"
	"net/url"
)

type AuthService struct {
	c *Client
}

func (c *Client) Auth() *AuthService {
	return &AuthService{c: c}
}

type RegisterRequest struct {
	LoginID     string `json:"loginId"`
	EmployeeID  string `json:"employeeId"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type authResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

// Register signs up and starts sess, which must not be nil.
func (s *AuthService) Register(ctx context.Context, sess *Session, req RegisterRequest) error {
	if sess == nil {
		return ErrNoSession
	}
	var out authResponse
	if err := s.c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &out); err != nil {
		return err
	}
	sess.set(out.Token, out.Account)
	return nil
}

func (s *AuthService) Login(ctx context.Context, sess *Session, loginID, password string) error {
	if sess == nil {
		return ErrNoSession
	}
	var out authResponse
	body := map[string]string{"loginId": loginID, "password": password}
	if err := s.c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &out); err != nil {
		return err
	}
	sess.set(out.Token, out.Account)
	return nil
}

// Me refreshes the session's account from the server.
func (s *AuthService) Me(ctx context.Context, sess *Session) (Account, error) {
	if !sess.Active() {
		return Account{}, ErrNoSession
	}
	var out Account
	if err := s.c.do(ctx, http.MethodGet, "/api/auth/me", sess, nil, &out); err != nil {
		return Account{}, err
	}
	token, _ := sess.bearer()
	sess.set(token, out)
	return out, nil
}

func (s *AuthService) Logout(sess *Session) {
	if sess != nil {
		sess.Clear()
	}
}

type AttendanceService struct {
	c    *Client
	sess *Session
}

func (c *Client) Attendance(sess *Session) *AttendanceService {
	return &AttendanceService{c: c, sess: sess}
}

func (s *AttendanceService) CheckIn(ctx context.Context) (Attendance, error) {
	var out Attendance
	err := s.c.do(ctx, http.MethodPost, "/api/attendance/check-in", s.sess, nil, &out)
	return out, err
}

func (s *AttendanceService) CheckOut(ctx context.Context) (Attendance, error) {
	var out Attendance
	err := s.c.do(ctx, http.MethodPost, "/api/attendance/check-out", s.sess, nil, &out)
	return out, err
}

// Today returns nil when the caller has not checked in today.
func (s *AttendanceService) Today(ctx context.Context) (*Attendance, error) {
	var out *Attendance
	err := s.c.do(ctx, http.MethodGet, "/api/attendance/today", s.sess, nil, &out)
	return out, err
}

func (s *AttendanceService) Mine(ctx context.Context, q PageQuery) (Page[Attendance], error) {
	return getPage[Attendance](ctx, s.c, s.sess, "/api/attendance/my-records", q)
}

func (s *AttendanceService) All(ctx context.Context, q PageQuery) (Page[Attendance], error) {
	return getPage[Attendance](ctx, s.c, s.sess, "/api/attendance", q)
}

func (s *AttendanceService) ForAccount(ctx context.Context, accountID string, q PageQuery) (Page[Attendance], error) {
	return getPage[Attendance](ctx, s.c, s.sess, "/api/attendance/"+url.PathEscape(accountID), q)
}

func (s *AttendanceService) CleanupInvalid(ctx context.Context) (int64, error) {
	var out struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	err := s.c.do(ctx, http.MethodDelete, "/api/attendance/cleanup/invalid", s.sess, nil, &out)
	return out.DeletedCount, err
}

type LeaveService struct {
	c    *Client
	sess *Session
}

func (c *Client) Leaves(sess *Session) *LeaveService {
	return &LeaveService{c: c, sess: sess}
}

func (s *LeaveService) Create(ctx context.Context, in NewLeave) (Leave, error) {
	var out Leave
	err := s.c.do(ctx, http.MethodPost, "/api/leaves", s.sess, in, &out)
	return out, err
}

func (s *LeaveService) Mine(ctx context.Context, q PageQuery) (Page[Leave], error) {
	return getPage[Leave](ctx, s.c, s.sess, "/api/leaves/my-requests", q)
}

func (s *LeaveService) All(ctx context.Context, q PageQuery) (Page[Leave], error) {
	return getPage[Leave](ctx, s.c, s.sess, "/api/leaves", q)
}

func (s *LeaveService) Approve(ctx context.Context, id, comments string) (Leave, error) {
	return s.review(ctx, id, "approve", comments)
}

func (s *LeaveService) Reject(ctx context.Context, id, comments string) (Leave, error) {
	return s.review(ctx, id, "reject", comments)
}

func (s *LeaveService) review(ctx context.Context, id, action, comments string) (Leave, error) {
	var out Leave
	body := map[string]string{"comments": comments}
	err := s.c.do(ctx, http.MethodPut, "/api/leaves/"+url.PathEscape(id)+"/"+action, s.sess, body, &out)
	return out, err
}

type SalaryService struct {
	c    *Client
	sess *Session
}

func (c *Client) Salary(sess *Session) *SalaryService {
	return &SalaryService{c: c, sess: sess}
}

func (s *SalaryService) Mine(ctx context.Context) (Salary, error) {
	var out Salary
	err := s.c.do(ctx, http.MethodGet, "/api/salary/my-salary", s.sess, nil, &out)
	return out, err
}

func (s *SalaryService) All(ctx context.Context, q PageQuery) (Page[Salary], error) {
	return getPage[Salary](ctx, s.c, s.sess, "/api/salary", q)
}

func (s *SalaryService) Get(ctx context.Context, accountID string) (Salary, error) {
	var out Salary
	err := s.c.do(ctx, http.MethodGet, "/api/salary/"+url.PathEscape(accountID), s.sess, nil, &out)
	return out, err
}

func (s *SalaryService) Update(ctx context.Context, accountID string, in SalaryUpdate) (Salary, error) {
	var out Salary
	err := s.c.do(ctx, http.MethodPut, "/api/salary/"+url.PathEscape(accountID), s.sess, in, &out)
	return out, err
}

type ProfileService struct {
	c    *Client
	sess *Session
}

func (c *Client) Profiles(sess *Session) *ProfileService {
	return &ProfileService{c: c, sess: sess}
}

func (s *ProfileService) Get(ctx context.Context, accountID string) (Profile, error) {
	var out Profile
	err := s.c.do(ctx, http.MethodGet, "/api/employees/profile/"+url.PathEscape(accountID), s.sess, nil, &out)
	return out, err
}

func (s *ProfileService) Update(ctx context.Context, accountID string, in ProfileUpdate) (Profile, error) {
	var out Profile
	err := s.c.do(ctx, http.MethodPut, "/api/employees/profile/"+url.PathEscape(accountID), s.sess, in, &out)
	return out, err
}

func (s *ProfileService) Directory(ctx context.Context, q PageQuery) (Page[DirectoryEntry], error) {
	return getPage[DirectoryEntry](ctx, s.c, s.sess, "/api/employees", q)
}

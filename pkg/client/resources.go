package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ProjectListOptions filter the public project list. The server only honors
// featured=true; there is no way to ask for non-featured projects.
type ProjectListOptions struct {
	FeaturedOnly bool
	Category     string
	Limit        int
}

func (o *ProjectListOptions) query() string {
	if o == nil {
		return ""
	}
	q := url.Values{}
	if o.FeaturedOnly {
		q.Set("featured", "true")
	}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return encodeQuery(q)
}

// ListOptions filter active-flagged content lists. The server only honors
// active=true.
type ListOptions struct {
	ActiveOnly bool
	Limit      int
}

func (o *ListOptions) query() string {
	if o == nil {
		return ""
	}
	q := url.Values{}
	if o.ActiveOnly {
		q.Set("active", "true")
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return encodeQuery(q)
}

// MessageListOptions filter the admin contact message list.
type MessageListOptions struct {
	Unread bool
	Limit  int
}

func (o *MessageListOptions) query() string {
	if o == nil {
		return ""
	}
	q := url.Values{}
	if o.Unread {
		q.Set("read", "false")
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return encodeQuery(q)
}

func encodeQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Login authenticates with email and password and stores the returned
// bearer token in the client's TokenProvider.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out, false); err != nil {
		return nil, err
	}
	c.tokens.SetToken(out.Token)
	return &out.User, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &out, true); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ChangePassword updates the authenticated user's password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return c.do(ctx, http.MethodPut, "/api/auth/password", body, nil, true)
}

// Projects lists projects, newest first.
func (c *Client) Projects(ctx context.Context, opts *ProjectListOptions) ([]Project, error) {
	var out []Project
	err := c.do(ctx, http.MethodGet, "/api/projects"+opts.query(), nil, &out, false)
	return out, err
}

// Project fetches one project by id.
func (c *Client) Project(ctx context.Context, id uint) (*Project, error) {
	var out Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/projects/%d", id), nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, in CreateProject) (*Project, error) {
	var out Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject applies a partial update to a project.
func (c *Client) UpdateProject(ctx context.Context, id uint, in UpdateProject) (*Project, error) {
	var out Project
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%d", id), in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d", id), nil, nil, true)
}

// Testimonials lists testimonials, newest first.
func (c *Client) Testimonials(ctx context.Context, opts *ListOptions) ([]Testimonial, error) {
	var out []Testimonial
	err := c.do(ctx, http.MethodGet, "/api/testimonials"+opts.query(), nil, &out, false)
	return out, err
}

// CreateTestimonial creates a testimonial.
func (c *Client) CreateTestimonial(ctx context.Context, in CreateTestimonial) (*Testimonial, error) {
	var out Testimonial
	if err := c.do(ctx, http.MethodPost, "/api/testimonials", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTestimonial applies a partial update to a testimonial.
func (c *Client) UpdateTestimonial(ctx context.Context, id uint, in UpdateTestimonial) (*Testimonial, error) {
	var out Testimonial
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/testimonials/%d", id), in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTestimonial deletes a testimonial.
func (c *Client) DeleteTestimonial(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/testimonials/%d", id), nil, nil, true)
}

// Services lists services, newest first.
func (c *Client) Services(ctx context.Context, opts *ListOptions) ([]Service, error) {
	var out []Service
	err := c.do(ctx, http.MethodGet, "/api/services"+opts.query(), nil, &out, false)
	return out, err
}

// CreateService creates a service.
func (c *Client) CreateService(ctx context.Context, in CreateService) (*Service, error) {
	var out Service
	if err := c.do(ctx, http.MethodPost, "/api/services", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateService applies a partial update to a service.
func (c *Client) UpdateService(ctx context.Context, id uint, in UpdateService) (*Service, error) {
	var out Service
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/services/%d", id), in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteService deletes a service.
func (c *Client) DeleteService(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/services/%d", id), nil, nil, true)
}

// Team lists team members, newest first.
func (c *Client) Team(ctx context.Context, opts *ListOptions) ([]TeamMember, error) {
	var out []TeamMember
	err := c.do(ctx, http.MethodGet, "/api/team"+opts.query(), nil, &out, false)
	return out, err
}

// CreateTeamMember creates a team member.
func (c *Client) CreateTeamMember(ctx context.Context, in CreateTeamMember) (*TeamMember, error) {
	var out TeamMember
	if err := c.do(ctx, http.MethodPost, "/api/team", in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTeamMember applies a partial update to a team member.
func (c *Client) UpdateTeamMember(ctx context.Context, id uint, in UpdateTeamMember) (*TeamMember, error) {
	var out TeamMember
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/team/%d", id), in, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTeamMember deletes a team member.
func (c *Client) DeleteTeamMember(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/team/%d", id), nil, nil, true)
}

// SubmitContactMessage sends the public contact form. Returns the new
// message id.
func (c *Client) SubmitContactMessage(ctx context.Context, in SubmitContact) (uint, error) {
	var out struct {
		Message string `json:"message"`
		ID      uint   `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/contact", in, &out, false); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// ContactMessages lists contact messages for the admin inbox.
func (c *Client) ContactMessages(ctx context.Context, opts *MessageListOptions) ([]ContactMessage, error) {
	var out []ContactMessage
	err := c.do(ctx, http.MethodGet, "/api/contact"+opts.query(), nil, &out, true)
	return out, err
}

// MarkMessageRead marks a contact message as read.
func (c *Client) MarkMessageRead(ctx context.Context, id uint) (*ContactMessage, error) {
	var out ContactMessage
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/contact/%d/read", id), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMessage deletes a contact message.
func (c *Client) DeleteMessage(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/contact/%d", id), nil, nil, true)
}

// Stats fetches the admin dashboard counters.
func (c *Client) Stats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

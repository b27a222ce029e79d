package client

import "time"

// User is an account as returned by the API. The password hash never
// crosses the wire.
type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Project is a portfolio entry.
type Project struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Year        string    `json:"year"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Testimonial is a client quote with a 1-5 rating.
type Testimonial struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Image     string    `json:"image"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Service is an offering shown on the marketing site.
type Service struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TeamMember is a staff profile.
type TeamMember struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	Image     string    `json:"image"`
	Email     string    `json:"email"`
	Linkedin  string    `json:"linkedin"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactMessage is a visitor message from the contact form.
type ContactMessage struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DashboardStats are the admin dashboard counters.
type DashboardStats struct {
	Projects       int64 `json:"projects"`
	Team           int64 `json:"team"`
	Testimonials   int64 `json:"testimonials"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unreadMessages"`
}

// CreateProject is the payload for creating a project.
type CreateProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Year        string `json:"year"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	IsFeatured  bool   `json:"isFeatured"`
}

// UpdateProject carries a partial project update. Nil fields stay unchanged.
type UpdateProject struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Year        *string `json:"year,omitempty"`
	Category    *string `json:"category,omitempty"`
	Image       *string `json:"image,omitempty"`
	IsFeatured  *bool   `json:"isFeatured,omitempty"`
}

// CreateTestimonial is the payload for creating a testimonial.
type CreateTestimonial struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
	Image    string `json:"image,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// UpdateTestimonial carries a partial testimonial update.
type UpdateTestimonial struct {
	Name     *string `json:"name,omitempty"`
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Rating   *int    `json:"rating,omitempty"`
	Image    *string `json:"image,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// CreateService is the payload for creating a service.
type CreateService struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// UpdateService carries a partial service update.
type UpdateService struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// CreateTeamMember is the payload for creating a team member.
type CreateTeamMember struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio,omitempty"`
	Image    string `json:"image,omitempty"`
	Email    string `json:"email,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// UpdateTeamMember carries a partial team member update.
type UpdateTeamMember struct {
	Name     *string `json:"name,omitempty"`
	Title    *string `json:"title,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Image    *string `json:"image,omitempty"`
	Email    *string `json:"email,omitempty"`
	Linkedin *string `json:"linkedin,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// SubmitContact is the public contact form payload.
type SubmitContact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

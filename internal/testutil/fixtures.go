package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jaewoo-dev/instalite/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	username string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		username: fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("test_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Username:     b.username,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndAuthenticate creates a user via the API and returns the user and a
// bearer token obtained through login
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"username": b.username,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.URL("/users"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code registering user: %d", resp.StatusCode)
	}

	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	token := Login(t, ts, b.email, b.password)
	return &user, token
}

// Login performs an API login and returns the bearer token
func Login(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(ts.URL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code logging in: %d", resp.StatusCode)
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	return loginResp.Token
}

// PostBuilder creates test posts with a builder pattern
type PostBuilder struct {
	author   *domain.User
	imageURL string
	caption  string
}

// NewPostBuilder creates a new PostBuilder with default values
func NewPostBuilder() *PostBuilder {
	return &PostBuilder{
		imageURL: "https://example.com/image.jpg",
		caption:  "test caption",
	}
}

// WithAuthor sets the post author
func (b *PostBuilder) WithAuthor(user *domain.User) *PostBuilder {
	b.author = user
	return b
}

// WithCaption sets the caption
func (b *PostBuilder) WithCaption(caption string) *PostBuilder {
	b.caption = caption
	return b
}

// Build creates the post in the database
func (b *PostBuilder) Build(t *testing.T, db *gorm.DB) *domain.Post {
	t.Helper()

	if b.author == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.author = user
	}

	post := &domain.Post{
		ImageURL:  b.imageURL,
		Caption:   b.caption,
		AuthorID:  b.author.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}

	return post
}

// CommentBuilder creates test comments
type CommentBuilder struct {
	author *domain.User
	post   *domain.Post
	text   string
}

// NewCommentBuilder creates a new CommentBuilder with default values
func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{text: "test comment"}
}

// WithAuthor sets the comment author
func (b *CommentBuilder) WithAuthor(user *domain.User) *CommentBuilder {
	b.author = user
	return b
}

// WithPost sets the parent post
func (b *CommentBuilder) WithPost(post *domain.Post) *CommentBuilder {
	b.post = post
	return b
}

// WithText sets the comment text
func (b *CommentBuilder) WithText(text string) *CommentBuilder {
	b.text = text
	return b
}

// Build creates the comment in the database
func (b *CommentBuilder) Build(t *testing.T, db *gorm.DB) *domain.Comment {
	t.Helper()

	if b.author == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.author = user
	}
	if b.post == nil {
		b.post = NewPostBuilder().Build(t, db)
	}

	comment := &domain.Comment{
		Text:      b.text,
		AuthorID:  b.author.ID,
		PostID:    b.post.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := db.Create(comment).Error; err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	return comment
}

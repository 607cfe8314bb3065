package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Seeds a running instalite server with fake users, posts, comments, likes
// and follows through the public HTTP API.

var baseURL string

type seededUser struct {
	ID       uint
	Email    string
	Password string
	Token    string
}

func main() {
	users := flag.Int("users", 5, "number of users to create")
	postsPer := flag.Int("posts", 3, "posts per user")
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	var seeded []seededUser
	for i := 0; i < *users; i++ {
		u := registerUser()
		u.Token = loginUser(u.Email, u.Password)
		seeded = append(seeded, u)
	}

	var postIDs []uint
	for _, u := range seeded {
		for i := 0; i < *postsPer; i++ {
			postIDs = append(postIDs, createPost(u.Token))
		}
	}

	for _, u := range seeded {
		for _, postID := range postIDs {
			if gofakeit.Bool() {
				likePost(u.Token, postID)
			}
			if gofakeit.Number(0, 2) == 0 {
				commentOnPost(u.Token, postID)
			}
		}
		for _, other := range seeded {
			if other.ID != u.ID && gofakeit.Bool() {
				followUser(u.Token, other.ID)
			}
		}
	}

	log.Printf("Seeded %d users, %d posts", len(seeded), len(postIDs))
}

func registerUser() seededUser {
	u := seededUser{
		Email:    gofakeit.Email(),
		Password: "password123",
	}

	body := map[string]string{
		"username": gofakeit.Username(),
		"email":    u.Email,
		"password": u.Password,
	}

	var created struct {
		ID uint `json:"id"`
	}
	doJSON(http.MethodPost, "/users", "", body, &created)
	u.ID = created.ID
	return u
}

func loginUser(email, password string) string {
	body := map[string]string{"email": email, "password": password}

	var resp struct {
		Token string `json:"token"`
	}
	doJSON(http.MethodPost, "/auth/login", "", body, &resp)
	if resp.Token == "" {
		log.Fatalf("could not obtain token for %s, aborting", email)
	}
	return resp.Token
}

func createPost(token string) uint {
	body := map[string]string{
		"imageUrl": gofakeit.ImageURL(640, 480),
		"caption":  gofakeit.Sentence(6),
	}

	var created struct {
		ID uint `json:"id"`
	}
	doJSON(http.MethodPost, "/posts", token, body, &created)
	return created.ID
}

func likePost(token string, postID uint) {
	doJSON(http.MethodPost, fmt.Sprintf("/posts/%d/like", postID), token, nil, nil)
}

func commentOnPost(token string, postID uint) {
	body := map[string]string{"text": gofakeit.Sentence(8)}
	doJSON(http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), token, body, nil)
}

func followUser(token string, userID uint) {
	doJSON(http.MethodPost, fmt.Sprintf("/users/%d/follow", userID), token, nil, nil)
}

func doJSON(method, path, token string, body interface{}, out interface{}) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Fatalf("encode request for %s: %v", path, err)
		}
	}

	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		log.Fatalf("build request for %s: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		log.Fatalf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		// Conflicts are expected when seeding random likes/follows.
		log.Printf("%s %s: status %d (skipping)", method, path, resp.StatusCode)
		return
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Fatalf("decode response from %s: %v", path, err)
		}
	}
}

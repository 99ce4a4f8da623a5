package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// Client interface for interacting with the HomeGnome API
type Client interface {
	Register(req *RegisterRequest) (*User, error)
	Login(req *LoginRequest) (*User, error)
	Logout() error
	GetProfile() (*User, error)
	UpdateProfile(req *UpdateProfileRequest) (*User, error)
	CreateListing(req *CreateListingRequest) (*Listing, error)
	ListListings(filters *ListListingsRequest) ([]Listing, error)
	GetListing(listingID string) (*Listing, error)
	CompleteListing(listingID string) (*Listing, error)
}

// HTTPClient implements the Client interface
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient creates a new HTTP client. token may be empty for
// unauthenticated calls.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type User struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	CompletedTasks   int      `json:"completed_tasks"`
	CompletedTaskIDs []string `json:"completed_task_ids,omitempty"`
	Token            string   `json:"token,omitempty"`
}

type CreateListingRequest struct {
	Role         string `json:"role"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

type ListListingsRequest struct {
	Role     string
	MinPrice string
	MaxPrice string
}

type Listing struct {
	ID           string    `json:"id"`
	Role         string    `json:"role"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	NumericPrice int64     `json:"numeric_price"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	AuthorName   string    `json:"author_name"`
	AuthorPhone  string    `json:"author_phone"`
	CreatedAt    time.Time `json:"created_at"`
	Completed    bool      `json:"completed"`
	CompletedBy  string    `json:"completed_by,omitempty"`
}

// Register creates the local identity via the API
func (c *HTTPClient) Register(req *RegisterRequest) (*User, error) {
	var user User
	if err := c.do(http.MethodPost, "/api/v1/auth/register", req, http.StatusCreated, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates against the stored identity
func (c *HTTPClient) Login(req *LoginRequest) (*User, error) {
	var user User
	if err := c.do(http.MethodPost, "/api/v1/auth/login", req, http.StatusOK, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the server-side session
func (c *HTTPClient) Logout() error {
	return c.do(http.MethodPost, "/api/v1/auth/logout", nil, http.StatusNoContent, nil)
}

// GetProfile fetches the current user
func (c *HTTPClient) GetProfile() (*User, error) {
	var user User
	if err := c.do(http.MethodGet, "/api/v1/profile", nil, http.StatusOK, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes name and phone of the current user
func (c *HTTPClient) UpdateProfile(req *UpdateProfileRequest) (*User, error) {
	var user User
	if err := c.do(http.MethodPut, "/api/v1/profile", req, http.StatusOK, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateListing posts a new listing
func (c *HTTPClient) CreateListing(req *CreateListingRequest) (*Listing, error) {
	var l Listing
	if err := c.do(http.MethodPost, "/api/v1/listings", req, http.StatusCreated, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListListings lists listings with optional filters
func (c *HTTPClient) ListListings(filters *ListListingsRequest) ([]Listing, error) {
	path := "/api/v1/listings"
	if filters != nil {
		q := url.Values{}
		if filters.Role != "" {
			q.Set("role", filters.Role)
		}
		if filters.MinPrice != "" {
			q.Set("min_price", filters.MinPrice)
		}
		if filters.MaxPrice != "" {
			q.Set("max_price", filters.MaxPrice)
		}
		if len(q) > 0 {
			path += "?" + q.Encode()
		}
	}

	var listings []Listing
	if err := c.do(http.MethodGet, path, nil, http.StatusOK, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// GetListing gets listing details by ID
func (c *HTTPClient) GetListing(listingID string) (*Listing, error) {
	var l Listing
	if err := c.do(http.MethodGet, "/api/v1/listings/"+listingID, nil, http.StatusOK, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// CompleteListing marks a listing as completed by its author
func (c *HTTPClient) CompleteListing(listingID string) (*Listing, error) {
	var l Listing
	if err := c.do(http.MethodPost, "/api/v1/listings/"+listingID+"/complete", nil, http.StatusOK, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *HTTPClient) do(method, path string, payload any, wantStatus int, out any) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("X-Session-Token", c.token)
	}

	logrus.Debugf("%s %s", method, c.baseURL+path)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

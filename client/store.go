package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"civic-reporter/models"

	"github.com/bwmarrin/snowflake"
)

// Store mirrors the remote issue collection. It keeps an in-memory snapshot
// that is replaced wholesale on every acknowledged mutation, so a consumer
// holding an older slice always sees a consistent view. Mutations are never
// applied locally before the server acknowledges them, with the single
// exception of explicitly staged provisional entries.
//
// The store performs no retry and no version checking: if two status
// updates for the same issue race, the last acknowledged response wins.
type Store struct {
	baseURL string
	http    *http.Client
	token   string
	node    *snowflake.Node
	issues  []Issue
}

// NewStore creates a store talking to the collection rooted at baseURL
// (e.g. "http://localhost:8080/api").
func NewStore(baseURL string) (*Store, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		node:    node,
		issues:  []Issue{},
	}, nil
}

// SetToken sets the bearer token attached to every request.
func (s *Store) SetToken(token string) {
	s.token = token
}

// Snapshot returns the current collection view. The returned slice is never
// mutated in place by the store; treat it as read-only.
func (s *Store) Snapshot() []Issue {
	return s.issues
}

// ByStatus returns the issues currently in the given workflow state.
func (s *Store) ByStatus(status models.IssueStatus) []Issue {
	var out []Issue
	for _, issue := range s.issues {
		if issue.Status == status {
			out = append(out, issue)
		}
	}
	return out
}

// StatusCounts tallies the snapshot by workflow state.
type StatusCounts struct {
	Submitted  int
	InProgress int
	Completed  int
}

func (s *Store) StatusCounts() StatusCounts {
	var counts StatusCounts
	for _, issue := range s.issues {
		switch issue.Status {
		case models.Submitted:
			counts.Submitted++
		case models.InProgress:
			counts.InProgress++
		case models.Completed:
			counts.Completed++
		}
	}
	return counts
}

// ListAll fetches the full remote collection and replaces the snapshot. On
// failure the existing snapshot is left untouched so the caller can keep
// showing the last known state.
func (s *Store) ListAll(ctx context.Context) ([]Issue, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/issues/", nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	resp, err := s.do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Status: resp.StatusCode}
	}

	var records []wireIssue
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &FetchError{Err: err}
	}

	issues := make([]Issue, 0, len(records))
	for _, record := range records {
		issues = append(issues, record.toIssue())
	}

	s.issues = issues
	return issues, nil
}

// Stage inserts a provisional locally-timestamped entry so the new report
// shows up immediately while Create is in flight. The provisional identity
// is replaced by the server-assigned one once Create is acknowledged.
func (s *Store) Stage(draft Draft) (Issue, error) {
	if err := validateDraft(draft); err != nil {
		return Issue{}, err
	}

	now := time.Now()
	issue := Issue{
		ID:          s.node.Generate().String(),
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Category:    draft.Category,
		Status:      models.Submitted,
		Coordinates: *draft.Coordinates,
		Address:     strings.TrimSpace(draft.Address),
		Timestamp:   now.UnixMilli(),
		CreatedAt:   now,
		Provisional: true,
	}

	s.issues = append(append([]Issue{}, s.issues...), issue)
	return issue, nil
}

// Create submits a new issue as a multipart payload. The draft is validated
// before any network call. On acknowledgment the canonical server record
// replaces the provisional entry named by provisionalID, or is appended when
// no provisional entry was staged (pass "" in that case).
func (s *Store) Create(ctx context.Context, draft Draft, provisionalID string) (Issue, error) {
	if err := validateDraft(draft); err != nil {
		return Issue{}, err
	}

	fields := []formField{
		{"title", strings.TrimSpace(draft.Title)},
		{"description", strings.TrimSpace(draft.Description)},
		{"category", draft.Category},
		{"status", string(models.Submitted)},
		{"latitude", wireCoordinate(draft.Coordinates.Lat)},
		{"longitude", wireCoordinate(draft.Coordinates.Lng)},
	}
	if addr := strings.TrimSpace(draft.Address); addr != "" {
		fields = append(fields, formField{"address", addr})
	}

	body, contentType, err := multipartBody(fields, draft.Photo, draft.PhotoName)
	if err != nil {
		return Issue{}, &CreateError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/issues/", body)
	if err != nil {
		return Issue{}, &CreateError{Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.do(req)
	if err != nil {
		return Issue{}, &CreateError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Issue{}, &CreateError{Status: resp.StatusCode}
	}

	var record wireIssue
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return Issue{}, &CreateError{Err: err}
	}

	issue := record.toIssue()
	s.swapIn(provisionalID, issue)
	return issue, nil
}

// Update submits a partial edit; only the fields set on changes are sent.
func (s *Store) Update(ctx context.Context, id string, changes Update) (Issue, error) {
	numeric, err := numericID(id)
	if err != nil {
		return Issue{}, &UpdateError{ID: id, Err: err}
	}

	var fields []formField
	if changes.Title != nil {
		fields = append(fields, formField{"title", *changes.Title})
	}
	if changes.Description != nil {
		fields = append(fields, formField{"description", *changes.Description})
	}
	if changes.Category != nil {
		fields = append(fields, formField{"category", *changes.Category})
	}
	if changes.Status != nil {
		fields = append(fields, formField{"status", string(*changes.Status)})
	}
	if changes.Coordinates != nil {
		fields = append(fields,
			formField{"latitude", wireCoordinate(changes.Coordinates.Lat)},
			formField{"longitude", wireCoordinate(changes.Coordinates.Lng)},
		)
	}
	if changes.Address != nil {
		fields = append(fields, formField{"address", *changes.Address})
	}

	body, contentType, err := multipartBody(fields, changes.Photo, changes.PhotoName)
	if err != nil {
		return Issue{}, &UpdateError{ID: id, Err: err}
	}

	url := s.baseURL + "/issues/" + strconv.FormatInt(numeric, 10) + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return Issue{}, &UpdateError{ID: id, Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.do(req)
	if err != nil {
		return Issue{}, &UpdateError{ID: id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Issue{}, &UpdateError{ID: id, Status: resp.StatusCode}
	}

	var record wireIssue
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return Issue{}, &UpdateError{ID: id, Err: err}
	}

	issue := record.toIssue()
	s.swapIn(issue.ID, issue)
	return issue, nil
}

// UpdateStatus is the dedicated status mutation. The forward-only workflow
// semantics live here: callers advance with models.NextStatus and the server
// rejects anything but the single next step or a same-status no-op.
func (s *Store) UpdateStatus(ctx context.Context, id string, status models.IssueStatus) (Issue, error) {
	if !models.ValidStatus(string(status)) {
		return Issue{}, &UpdateError{ID: id, Err: fmt.Errorf("unknown issue status %q", status)}
	}

	numeric, err := numericID(id)
	if err != nil {
		return Issue{}, &UpdateError{ID: id, Err: err}
	}

	body, contentType, err := multipartBody([]formField{{"status", string(status)}}, nil, "")
	if err != nil {
		return Issue{}, &UpdateError{ID: id, Err: err}
	}

	url := s.baseURL + "/issues/" + strconv.FormatInt(numeric, 10) + "/status/"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return Issue{}, &UpdateError{ID: id, Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.do(req)
	if err != nil {
		return Issue{}, &UpdateError{ID: id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Issue{}, &UpdateError{ID: id, Status: resp.StatusCode}
	}

	var record wireIssue
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return Issue{}, &UpdateError{ID: id, Err: err}
	}

	issue := record.toIssue()
	s.swapIn(issue.ID, issue)
	return issue, nil
}

// Delete removes an issue remotely, then drops the local entry. The local
// entry is only removed after the server acknowledges; deleting an id that
// is not in the snapshot is a no-op locally.
func (s *Store) Delete(ctx context.Context, id string) error {
	numeric, err := numericID(id)
	if err != nil {
		return &DeleteError{ID: id, Err: err}
	}

	url := s.baseURL + "/issues/" + strconv.FormatInt(numeric, 10) + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return &DeleteError{ID: id, Err: err}
	}

	resp, err := s.do(req)
	if err != nil {
		return &DeleteError{ID: id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &DeleteError{ID: id, Status: resp.StatusCode}
	}

	remaining := make([]Issue, 0, len(s.issues))
	for _, issue := range s.issues {
		if issue.ID != id {
			remaining = append(remaining, issue)
		}
	}
	s.issues = remaining
	return nil
}

func (s *Store) do(req *http.Request) (*http.Response, error) {
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	return s.http.Do(req)
}

// swapIn replaces the entry with the given id by the canonical record, or
// appends the record when no such entry exists.
func (s *Store) swapIn(id string, issue Issue) {
	next := make([]Issue, 0, len(s.issues)+1)
	replaced := false
	for _, existing := range s.issues {
		if existing.ID == id {
			next = append(next, issue)
			replaced = true
		} else {
			next = append(next, existing)
		}
	}
	if !replaced {
		next = append(next, issue)
	}
	s.issues = next
}

func validateDraft(draft Draft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return ErrMissingTitle
	}
	if strings.TrimSpace(draft.Description) == "" {
		return ErrMissingDescription
	}
	if strings.TrimSpace(draft.Category) == "" {
		return ErrMissingCategory
	}
	if draft.Coordinates == nil {
		return ErrMissingCoordinates
	}
	return nil
}

type formField struct {
	name  string
	value string
}

// multipartBody builds the multipart payload: one part per field, plus an
// "image" file part when a photo is attached.
func multipartBody(fields []formField, photo []byte, photoName string) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}

	if len(photo) > 0 {
		if photoName == "" {
			photoName = "photo.jpg"
		}
		part, err := writer.CreateFormFile("image", photoName)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(photo); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}

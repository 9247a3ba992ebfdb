package tools

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"
)

// ============================================================================
// GitHub Tool Implementations
// ============================================================================

// GitHubClient talks to the GitHub REST API
type GitHubClient struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewGitHubClient creates a GitHub API client. The token may be empty for
// public read-only access; write tools then fail at the API.
func NewGitHubClient(token string) *GitHubClient {
	return &GitHubClient{
		token:   token,
		baseURL: "https://api.github.com",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *GitHubClient) request(ctx context.Context, method, path string, payload interface{}) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "BrrrBot/1.0")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("GitHub API error: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, data, nil
}

func (e *Executor) githubUnavailable() *ToolResult {
	return &ToolResult{Success: false, Error: "GitHub integration is not configured"}
}

func (e *Executor) executeGitHubListFiles(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	if e.github == nil {
		return e.githubUnavailable()
	}

	repo := argString(args, "repo")
	path := argString(args, "path")
	branch := argString(args, "branch")

	apiPath := fmt.Sprintf("/repos/%s/contents/%s", repo, path)
	if branch != "" {
		apiPath += "?ref=" + url.QueryEscape(branch)
	}

	status, body, err := e.github.request(ctx, "GET", apiPath, nil)
	if err != nil {
		return errorResult(ToolGitHubListFiles, err)
	}
	if status == http.StatusNotFound {
		return &ToolResult{Success: false, Error: fmt.Sprintf("path %q not found in %s", path, repo)}
	}
	if status >= 300 {
		return &ToolResult{Success: false, Error: fmt.Sprintf("GitHub returned status %d", status)}
	}

	var entries []map[string]interface{}
	if err := json.Unmarshal(body, &entries); err != nil {
		return &ToolResult{Success: false, Error: "failed to parse GitHub response"}
	}

	files := make([]map[string]interface{}, 0, len(entries))
	for _, entry := range entries {
		files = append(files, map[string]interface{}{
			"name": entry["name"],
			"path": entry["path"],
			"type": entry["type"],
			"size": entry["size"],
		})
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"files": files},
		Message: fmt.Sprintf("Found %d entries in %s/%s", len(files), repo, path),
	}
}

func (e *Executor) executeGitHubReadFile(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	if e.github == nil {
		return e.githubUnavailable()
	}

	repo := argString(args, "repo")
	path := argString(args, "path")
	branch := argString(args, "branch")

	apiPath := fmt.Sprintf("/repos/%s/contents/%s", repo, path)
	if branch != "" {
		apiPath += "?ref=" + url.QueryEscape(branch)
	}

	status, body, err := e.github.request(ctx, "GET", apiPath, nil)
	if err != nil {
		return errorResult(ToolGitHubReadFile, err)
	}
	if status == http.StatusNotFound {
		return &ToolResult{Success: false, Error: fmt.Sprintf("file %q not found in %s", path, repo)}
	}
	if status >= 300 {
		return &ToolResult{Success: false, Error: fmt.Sprintf("GitHub returned status %d", status)}
	}

	var file struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
		SHA      string `json:"sha"`
		Size     int    `json:"size"`
	}
	if err := json.Unmarshal(body, &file); err != nil {
		return &ToolResult{Success: false, Error: "failed to parse GitHub response"}
	}

	content := file.Content
	if file.Encoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(stripNewlines(file.Content))
		if err != nil {
			return &ToolResult{Success: false, Error: "failed to decode file content"}
		}
		content = string(decoded)
	}

	return &ToolResult{
		Success: true,
		Data: map[string]interface{}{
			"path":    path,
			"content": content,
			"sha":     file.SHA,
			"size":    file.Size,
		},
	}
}

func (e *Executor) executeGitHubListBranches(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	if e.github == nil {
		return e.githubUnavailable()
	}

	repo := argString(args, "repo")
	status, body, err := e.github.request(ctx, "GET", fmt.Sprintf("/repos/%s/branches", repo), nil)
	if err != nil {
		return errorResult(ToolGitHubListBranches, err)
	}
	if status >= 300 {
		return &ToolResult{Success: false, Error: fmt.Sprintf("GitHub returned status %d", status)}
	}

	var branches []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &branches); err != nil {
		return &ToolResult{Success: false, Error: "failed to parse GitHub response"}
	}

	names := make([]string, 0, len(branches))
	for _, b := range branches {
		names = append(names, b.Name)
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"branches": names},
		Message: fmt.Sprintf("Found %d branches in %s", len(names), repo),
	}
}

func (e *Executor) executeGitHubListPRs(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	if e.github == nil {
		return e.githubUnavailable()
	}

	repo := argString(args, "repo")
	state := argString(args, "state")
	if state == "" {
		state = "open"
	}

	status, body, err := e.github.request(ctx, "GET",
		fmt.Sprintf("/repos/%s/pulls?state=%s", repo, url.QueryEscape(state)), nil)
	if err != nil {
		return errorResult(ToolGitHubListPRs, err)
	}
	if status >= 300 {
		return &ToolResult{Success: false, Error: fmt.Sprintf("GitHub returned status %d", status)}
	}

	var prs []map[string]interface{}
	if err := json.Unmarshal(body, &prs); err != nil {
		return &ToolResult{Success: false, Error: "failed to parse GitHub response"}
	}

	summaries := make([]map[string]interface{}, 0, len(prs))
	for _, pr := range prs {
		summaries = append(summaries, map[string]interface{}{
			"number": pr["number"],
			"title":  pr["title"],
			"state":  pr["state"],
			"url":    pr["html_url"],
		})
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"pull_requests": summaries},
		Message: fmt.Sprintf("Found %d %s pull requests in %s", len(summaries), state, repo),
	}
}

func (e *Executor) executeGitHubCreatePR(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	if e.github == nil {
		return e.githubUnavailable()
	}

	repo := argString(args, "repo")
	base := argString(args, "base")
	if base == "" {
		base = "main"
	}

	payload := map[string]string{
		"title": argString(args, "title"),
		"body":  argString(args, "body"),
		"head":  argString(args, "head"),
		"base":  base,
	}

	status, body, err := e.github.request(ctx, "POST", fmt.Sprintf("/repos/%s/pulls", repo), payload)
	if err != nil {
		return errorResult(ToolGitHubCreatePR, err)
	}
	if status >= 300 {
		return &ToolResult{Success: false, Error: fmt.Sprintf("GitHub returned status %d: %s", status, truncate(string(body), 200))}
	}

	var pr struct {
		Number int    `json:"number"`
		URL    string `json:"html_url"`
	}
	if err := json.Unmarshal(body, &pr); err != nil {
		return &ToolResult{Success: false, Error: "failed to parse GitHub response"}
	}

	return &ToolResult{
		Success: true,
		Data:    map[string]interface{}{"number": pr.Number, "url": pr.URL},
		Message: fmt.Sprintf("Created pull request #%d: %s", pr.Number, pr.URL),
	}
}

func (e *Executor) executeGitHubUpdateFile(ctx context.Context, _ *ExecutionContext, args map[string]interface{}) *ToolResult {
	if e.github == nil {
		return e.githubUnavailable()
	}

	repo := argString(args, "repo")
	path := argString(args, "path")
	branch := argString(args, "branch")

	// The contents API needs the current blob SHA to update an existing
	// file; a missing file is created instead.
	apiPath := fmt.Sprintf("/repos/%s/contents/%s", repo, path)
	lookupPath := apiPath
	if branch != "" {
		lookupPath += "?ref=" + url.QueryEscape(branch)
	}

	var sha string
	status, body, err := e.github.request(ctx, "GET", lookupPath, nil)
	if err == nil && status == http.StatusOK {
		var existing struct {
			SHA string `json:"sha"`
		}
		if json.Unmarshal(body, &existing) == nil {
			sha = existing.SHA
		}
	}

	payload := map[string]string{
		"message": argString(args, "message"),
		"content": base64.StdEncoding.EncodeToString([]byte(argString(args, "content"))),
	}
	if branch != "" {
		payload["branch"] = branch
	}
	if sha != "" {
		payload["sha"] = sha
	}

	status, body, err = e.github.request(ctx, "PUT", apiPath, payload)
	if err != nil {
		return errorResult(ToolGitHubUpdateFile, err)
	}
	if status >= 300 {
		return &ToolResult{Success: false, Error: fmt.Sprintf("GitHub returned status %d: %s", status, truncate(string(body), 200))}
	}

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Committed %s to %s", path, repo),
	}
}

func stripNewlines(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' && s[i] != '\r' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// truncate caps s at max bytes without splitting a UTF-8 rune
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max] + "..."
}

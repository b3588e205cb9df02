package twitter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"account-list/core/reconcile"

	"github.com/dghubble/oauth1"
	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// user is the subset of a user object the resolver needs.
type user struct {
	ID         uint64 `json:"id"`
	ScreenName string `json:"screen_name"`
}

// Resolver implements reconcile.Resolver against the users/lookup endpoint.
//
// References are sent in chunks of at most BatchSize, one request after the
// other, and the results are concatenated in chunk order. Up to BatchSize
// references therefore cost exactly one request.
type Resolver struct {
	endpoint   string
	batchSize  int
	limiter    *rate.Limiter
	httpClient *http.Client
}

// NewResolver creates a resolver that signs its requests with creds.
func NewResolver(cfg Config, creds Credentials) *Resolver {
	return NewResolverWithClient(cfg, creds, http.DefaultClient)
}

// NewResolverWithClient is like NewResolver but sends requests through the
// transport of base.
func NewResolverWithClient(cfg Config, creds Credentials, base *http.Client) *Resolver {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	ctx := context.WithValue(context.Background(), oauth1.HTTPClient, base)
	signer := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	httpClient := signer.Client(ctx, oauth1.NewToken(creds.AccessToken, creds.AccessSecret))
	httpClient.Timeout = time.Duration(timeout) * time.Second

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}

	return &Resolver{
		endpoint:   cfg.Endpoint,
		batchSize:  batchSize,
		limiter:    rate.NewLimiter(limit, 1),
		httpClient: httpClient,
	}
}

// Resolve looks up every reference. Accounts the service does not know are
// left out of the result. Any failed request fails the whole call.
func (r *Resolver) Resolve(ctx context.Context, refs []reconcile.IdentityRef) ([]reconcile.ResolvedIdentity, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	var out []reconcile.ResolvedIdentity
	for start := 0; start < len(refs); start += r.batchSize {
		end := min(start+r.batchSize, len(refs))

		if err := r.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("failed to wait for rate limiter: %w", err)
		}

		users, err := r.lookup(ctx, refs[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to look up references %d-%d: %w", start, end-1, err)
		}
		for _, u := range users {
			out = append(out, reconcile.ResolvedIdentity{ID: u.ID, Name: u.ScreenName})
		}
	}

	return out, nil
}

// lookup performs one users/lookup request.
func (r *Resolver) lookup(ctx context.Context, refs []reconcile.IdentityRef) ([]user, error) {
	form := encodeRefs(refs)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Errors []APIErrorDetail `json:"errors"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Errors = payload.Errors
		}
		if apiErr.noUserMatches() {
			return nil, nil
		}
		return nil, apiErr
	}

	var users []user
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return users, nil
}

// encodeRefs builds the form body: IDs go to user_id and names to
// screen_name, both comma-joined in reference order.
func encodeRefs(refs []reconcile.IdentityRef) url.Values {
	var ids, names []string
	for _, ref := range refs {
		switch ref.Kind {
		case reconcile.RefID:
			ids = append(ids, strconv.FormatUint(ref.ID, 10))
		case reconcile.RefName:
			names = append(names, ref.Name)
		}
	}

	form := url.Values{}
	if len(ids) > 0 {
		form.Set("user_id", strings.Join(ids, ","))
	}
	if len(names) > 0 {
		form.Set("screen_name", strings.Join(names, ","))
	}
	form.Set("include_entities", "false")
	return form
}

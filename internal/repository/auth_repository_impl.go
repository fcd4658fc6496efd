package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/aevohorology/storefront-service/config"
	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/aevohorology/storefront-service/pkg/errs"
	"github.com/aevohorology/storefront-service/pkg/httpclient"
	"github.com/rs/zerolog/log"
)

// RestAuthRepositoryImpl fronts the remote auth sub-service. The current
// access token is held here, the way a browser client keeps it in
// storage; GetSession revalidates it against the remote on every call.
type RestAuthRepositoryImpl struct {
	config *config.Config

	mu      sync.Mutex
	session domain.Session
	user    domain.User
}

func CreateNewRestAuthRepository(config *config.Config) *RestAuthRepositoryImpl {
	return &RestAuthRepositoryImpl{config: config}
}

type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	ExpiresAt   int64       `json:"expires_at"`
	User        domain.User `json:"user"`
}

func (r *RestAuthRepositoryImpl) SignIn(ctx context.Context, email string, password string) (sess domain.Session, user domain.User, err error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return
	}

	statusCode, body, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		URL:    r.config.RemoteConfig.BaseURL + "/auth/v1/token?grant_type=password",
		Method: "POST",
		Body:   payload,
		Headers: map[string]string{
			"Content-Type": "application/json",
			"apikey":       r.config.RemoteConfig.ServiceKey,
		},
	})
	if err != nil {
		log.Error().Err(err).Str("component", "SignIn").Msg("")
		return sess, user, errs.ErrRemoteUnavailable
	}

	if statusCode != http.StatusOK {
		return sess, user, errs.ErrInvalidCredentialsEmail
	}

	var resp tokenResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return
	}

	sess = domain.Session{AccessToken: resp.AccessToken, ExpiresAt: resp.ExpiresAt}
	user = resp.User

	r.mu.Lock()
	r.session = sess
	r.user = user
	r.mu.Unlock()

	return
}

func (r *RestAuthRepositoryImpl) SignOut(ctx context.Context) (err error) {
	r.mu.Lock()
	token := r.session.AccessToken
	r.session = domain.Session{}
	r.user = domain.User{}
	r.mu.Unlock()

	if token == "" {
		return nil
	}

	statusCode, _, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		URL:    r.config.RemoteConfig.BaseURL + "/auth/v1/logout",
		Method: "POST",
		Headers: map[string]string{
			"apikey":        r.config.RemoteConfig.ServiceKey,
			"Authorization": fmt.Sprintf("Bearer %s", token),
		},
	})
	if err != nil {
		log.Error().Err(err).Str("component", "SignOut").Msg("")
		return errs.ErrRemoteUnavailable
	}

	if statusCode < 200 || statusCode > 299 {
		return errs.ErrRemoteUnavailable
	}

	return nil
}

func (r *RestAuthRepositoryImpl) GetSession(ctx context.Context) (sess domain.Session, user domain.User, err error) {
	r.mu.Lock()
	sess = r.session
	user = r.user
	r.mu.Unlock()

	if sess.AccessToken == "" {
		return domain.Session{}, domain.User{}, nil
	}

	statusCode, body, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		URL:    r.config.RemoteConfig.BaseURL + "/auth/v1/user",
		Method: "GET",
		Headers: map[string]string{
			"apikey":        r.config.RemoteConfig.ServiceKey,
			"Authorization": fmt.Sprintf("Bearer %s", sess.AccessToken),
		},
	})
	if err != nil {
		log.Error().Err(err).Str("component", "GetSession").Msg("")
		return domain.Session{}, domain.User{}, errs.ErrRemoteUnavailable
	}

	// The remote rejecting the token means the session is gone, not that
	// the call failed.
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		r.mu.Lock()
		r.session = domain.Session{}
		r.user = domain.User{}
		r.mu.Unlock()
		return domain.Session{}, domain.User{}, nil
	}

	if statusCode != http.StatusOK {
		return domain.Session{}, domain.User{}, errs.ErrRemoteUnavailable
	}

	var remoteUser domain.User
	if err = json.Unmarshal(body, &remoteUser); err != nil {
		return domain.Session{}, domain.User{}, err
	}

	r.mu.Lock()
	r.user = remoteUser
	user = remoteUser
	r.mu.Unlock()

	return
}

func (r *RestAuthRepositoryImpl) IsAdmin(ctx context.Context, userID string) (isAdmin bool, err error) {
	statusCode, body, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/rest/v1/profiles?id=eq.%s&select=is_admin", r.config.RemoteConfig.BaseURL, url.QueryEscape(userID)),
		Method: "GET",
		Headers: map[string]string{
			"apikey":        r.config.RemoteConfig.ServiceKey,
			"Authorization": fmt.Sprintf("Bearer %s", r.config.RemoteConfig.ServiceKey),
		},
	})
	if err != nil {
		log.Error().Err(err).Str("component", "IsAdmin").Msg("")
		return false, errs.ErrRemoteUnavailable
	}

	if statusCode != http.StatusOK {
		return false, errs.ErrRemoteUnavailable
	}

	var profiles []struct {
		IsAdmin bool `json:"is_admin"`
	}
	if err = json.Unmarshal(body, &profiles); err != nil {
		return false, err
	}

	if len(profiles) == 0 {
		return false, nil
	}

	return profiles[0].IsAdmin, nil
}

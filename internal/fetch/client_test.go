package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/roster/internal/fetch"
)

const usersPayload = `{
	"results": [
		{"gender": "female", "name": {"title": "Ms", "first": "Amy", "last": "Pond"},
		 "email": "amy.pond@example.com", "dob": {"date": "1995-03-01T00:00:00Z", "age": 30}},
		{"gender": "male", "name": {"title": "Mr", "first": "Bo", "last": "Diaz"},
		 "email": "bo.diaz@example.com", "dob": {"date": "2000-07-14T00:00:00Z", "age": 25}}
	],
	"info": {"results": 2, "page": 1, "version": "1.4"}
}`

func TestClient_Users(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("results"))
		assert.Equal(t, "gender,name,email,dob", r.URL.Query().Get("inc"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(usersPayload))
	}))
	defer server.Close()

	client := fetch.NewClient(server.URL, zerolog.Nop())
	records, err := client.Users(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Amy", records[0].Name.First)
	assert.Equal(t, "Pond", records[0].Name.Last)
	assert.Equal(t, "female", records[0].Gender)
	assert.Equal(t, 30, records[0].DOB.Age)
	assert.Equal(t, "bo.diaz@example.com", records[1].Email)
}

func TestClient_Users_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := fetch.NewClient(server.URL, zerolog.Nop())
	records, err := client.Users(context.Background(), 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, fetch.ErrBadStatus)
	assert.Nil(t, records)
}

func TestClient_Users_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": "not-a-list"`))
	}))
	defer server.Close()

	client := fetch.NewClient(server.URL, zerolog.Nop())
	_, err := client.Users(context.Background(), 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, fetch.ErrMalformedPayload)
}

func TestClient_Users_Cancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	client := fetch.NewClient(server.URL, zerolog.Nop())
	_, err := client.Users(ctx, 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled, "cancellation must stay distinguishable from failure")
	assert.NotErrorIs(t, err, fetch.ErrBadStatus)
}

func TestClient_Users_DefaultsCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "40", r.URL.Query().Get("results"))
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := fetch.NewClient(server.URL, zerolog.Nop())
	records, err := client.Users(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, records)
}

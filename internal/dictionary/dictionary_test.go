package dictionary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/banana":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`[{"word":"banana","phonetic":"/bəˈnɑː.nə/"}]`))
		case "/bxqzw":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"title":"No Definitions Found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)
	return server, &paths
}

func TestIsWord(t *testing.T) {
	server, _ := newTestServer(t)
	client := NewClient(server.URL, nil, time.Minute)

	isWord, err := client.IsWord(context.Background(), "banana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isWord {
		t.Error("banana should be a word")
	}

	isWord, err = client.IsWord(context.Background(), "bxqzw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isWord {
		t.Error("bxqzw should not be a word")
	}
}

func TestIsWord_LooksUpFirstTokenOnly(t *testing.T) {
	server, paths := newTestServer(t)
	client := NewClient(server.URL, nil, time.Minute)

	isWord, err := client.IsWord(context.Background(), "banana split")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isWord {
		t.Error("first token lookup should succeed")
	}
	if len(*paths) != 1 || (*paths)[0] != "/banana" {
		t.Errorf("requested paths = %v, want [/banana]", *paths)
	}
}

func TestIsWord_EmptyInput(t *testing.T) {
	server, paths := newTestServer(t)
	client := NewClient(server.URL, nil, time.Minute)

	isWord, err := client.IsWord(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isWord {
		t.Error("blank input is not a word")
	}
	if len(*paths) != 0 {
		t.Errorf("blank input should not hit the API, got %v", *paths)
	}
}

func TestIsWord_ServerErrorPropagates(t *testing.T) {
	server, _ := newTestServer(t)
	client := NewClient(server.URL, nil, time.Minute)

	if _, err := client.IsWord(context.Background(), "boom"); err == nil {
		t.Fatal("a non-404 failure must propagate, not read as a verdict")
	}
}

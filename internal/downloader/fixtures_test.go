package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"animalscraper/pkg/config"
	"animalscraper/pkg/logger"
	"animalscraper/pkg/models"
	"animalscraper/pkg/wikipedia"
)

const imageBytes = "\xff\xd8\xff fake jpeg"

func infoboxPage(src string) string {
	return fmt.Sprintf(`<html><body>
<table class="infobox biota"><tr><td><a href="/wiki/File:x.jpg"><img src="%s" width="250"></a></td></tr></table>
</body></html>`, src)
}

func animal(name string) models.Animal {
	return models.Animal{Name: name, Href: "/wiki/" + name, CollateralAdjectives: []string{}}
}

// fakeWikipedia serves animal pages with an infobox image and counts every
// request it receives.
type fakeWikipedia struct {
	server   *httptest.Server
	requests int32
	slow     map[string]bool
	noImage  map[string]bool
}

func newFakeWikipedia(t *testing.T) *fakeWikipedia {
	t.Helper()
	f := &fakeWikipedia{slow: map[string]bool{}, noImage: map[string]bool{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeWikipedia) serve(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&f.requests, 1)

	if strings.HasPrefix(r.URL.Path, "/upload/") {
		w.Header().Set("Content-Type", "image/jpeg")
		io.WriteString(w, imageBytes)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/wiki/")
	if f.slow[name] {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
		return
	}
	if f.noImage[name] {
		io.WriteString(w, `<html><body><p>stub</p></body></html>`)
		return
	}
	io.WriteString(w, infoboxPage("/upload/"+name+".jpg"))
}

func (f *fakeWikipedia) Requests() int {
	return int(atomic.LoadInt32(&f.requests))
}

func (f *fakeWikipedia) client(timeout time.Duration) *wikipedia.Client {
	cfg := config.WikipediaConfig{BaseURL: f.server.URL, UserAgent: "animalscraper-test"}
	return wikipedia.NewClient(cfg, timeout, logger.NewNopLogger())
}

// stubClient answers from memory and tracks how many calls run at once
type stubClient struct {
	delay     time.Duration
	panicOn   string
	inFlight  int32
	maxFlight int32
	mu        sync.Mutex
	pages     []string
}

func (s *stubClient) BaseURL() string { return "https://en.wikipedia.org" }

func (s *stubClient) GetPage(ctx context.Context, path string) (string, error) {
	n := atomic.AddInt32(&s.inFlight, 1)
	defer atomic.AddInt32(&s.inFlight, -1)
	for {
		peak := atomic.LoadInt32(&s.maxFlight)
		if n <= peak || atomic.CompareAndSwapInt32(&s.maxFlight, peak, n) {
			break
		}
	}

	s.mu.Lock()
	s.pages = append(s.pages, path)
	s.mu.Unlock()

	if s.panicOn != "" && path == "/wiki/"+s.panicOn {
		panic("boom")
	}
	time.Sleep(s.delay)
	return infoboxPage("//upload.wikimedia.org" + path + ".jpg"), nil
}

func (s *stubClient) DownloadImage(ctx context.Context, src string) ([]byte, error) {
	return []byte(imageBytes), nil
}

// memoryStore keeps images in a map
type memoryStore struct {
	mu     sync.Mutex
	images map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{images: map[string][]byte{}}
}

func (m *memoryStore) Exists(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.images[name]
	return ok
}

func (m *memoryStore) Save(r io.Reader, name string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images[name] = data
	return "mem://" + name, nil
}

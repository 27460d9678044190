package gsheets_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"proxy-jobs-export/pkg/gsheets"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, ts *httptest.Server) *gsheets.Client {
	t.Helper()
	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}
	client, err := gsheets.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

type fakeSheets struct {
	existing  []string
	added     []string
	cleared   int
	written   [][]string
	inputMode string
}

func (f *fakeSheets) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		case r.Method == http.MethodGet && path == "/v4/spreadsheets/sheet-1":
			var sheets []map[string]any
			for _, name := range f.existing {
				sheets = append(sheets, map[string]any{"properties": map[string]any{"title": name}})
			}
			json.NewEncoder(w).Encode(map[string]any{"sheets": sheets})

		case r.Method == http.MethodPost && path == "/v4/spreadsheets/sheet-1:batchUpdate":
			var body struct {
				Requests []struct {
					AddSheet struct {
						Properties struct {
							Title string `json:"title"`
						} `json:"properties"`
					} `json:"addSheet"`
				} `json:"requests"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			for _, req := range body.Requests {
				f.added = append(f.added, req.AddSheet.Properties.Title)
			}
			w.Write([]byte(`{"spreadsheetId":"sheet-1"}`))

		case r.Method == http.MethodPost && strings.HasSuffix(path, ":clear"):
			f.cleared++
			w.Write([]byte(`{"spreadsheetId":"sheet-1"}`))

		case r.Method == http.MethodPut && strings.HasPrefix(path, "/v4/spreadsheets/sheet-1/values/"):
			f.inputMode = r.URL.Query().Get("valueInputOption")
			raw, _ := io.ReadAll(r.Body)
			var body struct {
				Values [][]string `json:"values"`
			}
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Errorf("bad update body: %v", err)
			}
			f.written = body.Values
			json.NewEncoder(w).Encode(map[string]any{
				"spreadsheetId": "sheet-1",
				"updatedRange":  "Jobs!A1:B2",
				"updatedRows":   len(body.Values),
			})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestPublish(t *testing.T) {
	rows := [][]string{{"Job Number", "Job Name"}, {"012345", "Acme"}}

	t.Run("Creates Missing Sheet", func(t *testing.T) {
		fake := &fakeSheets{existing: []string{"Sheet1"}}
		ts := httptest.NewServer(fake.handler(t))
		defer ts.Close()

		res, err := newTestClient(t, ts).Publish(context.Background(), gsheets.PublishRequest{
			SpreadsheetID: "sheet-1",
			SheetName:     "Jobs",
			Rows:          rows,
		})
		if err != nil {
			t.Fatalf("Publish: %v", err)
		}
		if !res.Created || res.UpdatedRows != 2 {
			t.Errorf("unexpected result: %+v", res)
		}
		if len(fake.added) != 1 || fake.added[0] != "Jobs" {
			t.Errorf("expected Jobs to be added, got %v", fake.added)
		}
		if fake.cleared != 1 {
			t.Errorf("expected one clear, got %d", fake.cleared)
		}
		if fake.inputMode != "RAW" {
			t.Errorf("expected RAW input, got %q", fake.inputMode)
		}
		if len(fake.written) != 2 || fake.written[1][0] != "012345" {
			t.Errorf("unexpected written values: %v", fake.written)
		}
	})

	t.Run("Reuses Existing Sheet", func(t *testing.T) {
		fake := &fakeSheets{existing: []string{"Jobs"}}
		ts := httptest.NewServer(fake.handler(t))
		defer ts.Close()

		res, err := newTestClient(t, ts).Publish(context.Background(), gsheets.PublishRequest{
			SpreadsheetID: "sheet-1",
			SheetName:     "Jobs",
			Rows:          rows,
		})
		if err != nil {
			t.Fatalf("Publish: %v", err)
		}
		if res.Created || len(fake.added) != 0 {
			t.Errorf("expected no sheet to be added, got %v", fake.added)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		defer ts.Close()

		client := newTestClient(t, ts)
		if _, err := client.Publish(context.Background(), gsheets.PublishRequest{SheetName: "Jobs"}); err == nil {
			t.Error("expected error without spreadsheet id")
		}
		if _, err := client.Publish(context.Background(), gsheets.PublishRequest{SpreadsheetID: "sheet-1"}); err == nil {
			t.Error("expected error without sheet name")
		}
	})

	t.Run("Upstream Error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer ts.Close()

		_, err := newTestClient(t, ts).Publish(context.Background(), gsheets.PublishRequest{
			SpreadsheetID: "sheet-1",
			SheetName:     "Jobs",
			Rows:          rows,
		})
		if err == nil {
			t.Fatal("expected error on forbidden")
		}
	})
}

func TestNewClientFromCredentials(t *testing.T) {
	if _, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`)); err == nil {
		t.Error("expected decoding failure")
	}

	tmpFile, _ := os.CreateTemp("", "creds.json")
	defer os.Remove(tmpFile.Name())
	tmpFile.WriteString(`{"broken":true}`)
	tmpFile.Close()

	if _, err := gsheets.NewClientFromCredentialsFile(context.Background(), tmpFile.Name()); err == nil {
		t.Error("expected error for broken credentials file")
	}
	if _, err := gsheets.NewClientFromCredentialsFile(context.Background(), "/nonexistent/creds.json"); err == nil {
		t.Error("expected reading file error")
	}
}

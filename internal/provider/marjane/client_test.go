package marjane

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchProductsParsesAnchors(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "poulet fermier" {
			t.Errorf("query = %q", r.URL.Query().Get("q"))
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
<a href="/product/123" class="card"><span>Poulet  fermier
 1kg</span></a>
<a href="https://cdn.example.com/product/456">Filet de poulet</a>
<a href="/product/789">x</a>
<a href="/about">About us</a>
</body></html>`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	products, err := c.SearchProducts(context.Background(), "poulet fermier")
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("products = %+v, want 2", products)
	}
	if products[0].Name != "Poulet fermier 1kg" {
		t.Fatalf("name = %q", products[0].Name)
	}
	if products[0].URL != ts.URL+"/product/123" {
		t.Fatalf("relative url not absolutized: %q", products[0].URL)
	}
	if products[1].URL != "https://cdn.example.com/product/456" {
		t.Fatalf("absolute url mangled: %q", products[1].URL)
	}
}

func TestSearchProductsStatusError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, err := c.SearchProducts(context.Background(), "poulet"); err == nil {
		t.Fatal("blocked responses must surface an error")
	}
}

func TestSearchURL(t *testing.T) {
	t.Parallel()

	c := &Client{}
	got := c.SearchURL("thé vert")
	want := "https://www.marjane.ma/search?q=th%C3%A9+vert"
	if got != want {
		t.Fatalf("SearchURL = %q, want %q", got, want)
	}
}

package controllerImp

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"

	"cropbook/pkg/guides/service"
)

const maxFetchBytes = 2 << 20 // 2 MiB page cap

type GuideCtrl struct {
	svc            service.GuideService
	allowedDomains []string
}

func New(svc service.GuideService, allowedDomains []string) *GuideCtrl {
	return &GuideCtrl{svc: svc, allowedDomains: allowedDomains}
}

type ingestTextReq struct {
	Title string `json:"title"`
	Crop  string `json:"crop"`
	Text  string `json:"text"`
}

func (h *GuideCtrl) IngestText(c echo.Context) error {
	var req ingestTextReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Text) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title and text are required"})
	}
	doc, n, err := h.svc.IngestDocument(req.Title, req.Crop, req.Text, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"doc": doc, "chunks": n})
}

type ingestURLReq struct {
	URL  string `json:"url"`
	Crop string `json:"crop"`
}

func (h *GuideCtrl) IngestURL(c echo.Context) error {
	var req ingestURLReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := url.Parse(strings.TrimSpace(req.URL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url must be http or https"})
	}
	if !h.domainAllowed(u.Hostname()) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "domain not in allow list"})
	}

	title, text, err := fetchMainText(u.String())
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	if strings.TrimSpace(text) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no readable text at url"})
	}

	doc, n, err := h.svc.IngestDocument(title, req.Crop, text, u.String())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"doc": doc, "chunks": n})
}

func (h *GuideCtrl) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if strings.TrimSpace(q) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "q is required"})
	}
	k := 5
	if v := c.QueryParam("k"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 20 {
			k = n
		}
	}

	chunks, err := h.svc.Search(q, k)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	ids := make([]uint, 0, len(chunks))
	seen := map[uint]bool{}
	for _, ch := range chunks {
		if !seen[ch.DocID] {
			seen[ch.DocID] = true
			ids = append(ids, ch.DocID)
		}
	}
	docs, err := h.svc.DocsMeta(ids)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	type hit struct {
		Title     string `json:"title"`
		Crop      string `json:"crop"`
		SourceURL string `json:"source_url,omitempty"`
		Text      string `json:"text"`
	}
	out := make([]hit, 0, len(chunks))
	for _, ch := range chunks {
		d := docs[ch.DocID]
		out = append(out, hit{Title: d.Title, Crop: d.Crop, SourceURL: d.SourceURL, Text: ch.Text})
	}
	return c.JSON(http.StatusOK, map[string]any{"results": out})
}

func (h *GuideCtrl) domainAllowed(host string) bool {
	host = strings.ToLower(host)
	for _, d := range h.allowedDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// fetchMainText pulls the page and extracts headline and body text
// from the main/article region, falling back to the whole document.
func fetchMainText(pageURL string) (title, text string, err error) {
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Get(pageURL)
	if err != nil {
		return "", "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fetch %s: status %d", pageURL, resp.StatusCode)
	}
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "text/html") {
		return "", "", fmt.Errorf("fetch %s: unsupported content type %q", pageURL, ct)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxFetchBytes))
	if err != nil {
		return "", "", fmt.Errorf("parse %s: %w", pageURL, err)
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())

	root := doc.Find("main, article")
	if root.Length() == 0 {
		root = doc.Selection
	}
	var b strings.Builder
	root.Find("h1, h2, h3, p, li").Each(func(_ int, s *goquery.Selection) {
		t := cleanWhitespace(s.Text())
		if t != "" {
			b.WriteString(t)
			b.WriteString("\n")
		}
	})
	text = b.String()

	if title == "" {
		title = guessTitleFromText(text, pageURL)
	}
	return title, text, nil
}

func cleanWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func guessTitleFromText(text, fallback string) string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			if len(line) > 80 {
				line = line[:80]
			}
			return line
		}
	}
	return fallback
}

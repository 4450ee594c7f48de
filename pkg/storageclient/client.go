package storageclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/yourname/upload_pipeline/internal/models"
	"github.com/yourname/upload_pipeline/pkg/storageproto"
)

// Upload описывает отправляемый файл.
type Upload struct {
	FileName    string
	ContentType string
	Reader      io.Reader
	// Size используется только для индикатора прогресса, <= 0 если неизвестен.
	Size int64
}

// Response — ответ сервиса как есть: статус, тип и сырое тело.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type Client interface {
	// Store Переслать файл в storage-сервис (POST /store)
	Store(ctx context.Context, baseURL string, up Upload) (Response, error)
	// Upload Загрузить файл через gateway (POST /upload)
	Upload(ctx context.Context, baseURL string, up Upload) (Response, error)
	// Files Листинг каталога storage-сервиса
	Files(ctx context.Context, baseURL string) (models.Listing, error)
	// FileInfo Метаданные одного файла; ErrNotFound при 404
	FileInfo(ctx context.Context, baseURL, name string) (models.FileInfo, error)
	// Health Сырой ответ /health
	Health(ctx context.Context, baseURL string) (Response, error)
}

type Option func(*httpClient)

// WithProgress включает ASCII-индикатор прогресса отправки в w.
func WithProgress(w io.Writer) Option {
	return func(h *httpClient) { h.progress = w }
}

// WithHTTPClient подменяет HTTP-клиент.
func WithHTTPClient(c *http.Client) Option {
	return func(h *httpClient) { h.c = c }
}

type httpClient struct {
	c        *http.Client
	progress io.Writer
}

// New создаёт HTTP-клиент по умолчанию: без таймаута и без keep-alive,
// так что каждый запрос идёт по новому соединению.
func New(opts ...Option) Client {
	h := &httpClient{
		c: &http.Client{
			Transport: &http.Transport{
				Proxy:             http.ProxyFromEnvironment,
				DisableKeepAlives: true,
			},
		},
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *httpClient) Store(ctx context.Context, baseURL string, up Upload) (Response, error) {
	return h.postMultipart(ctx, endpoint(baseURL, storageproto.PathStore), up)
}

func (h *httpClient) Upload(ctx context.Context, baseURL string, up Upload) (Response, error) {
	return h.postMultipart(ctx, endpoint(baseURL, storageproto.PathUpload), up)
}

func (h *httpClient) Files(ctx context.Context, baseURL string) (models.Listing, error) {
	var out models.Listing
	err := h.getJSON(ctx, endpoint(baseURL, storageproto.PathFiles), &out)
	return out, err
}

func (h *httpClient) FileInfo(ctx context.Context, baseURL, name string) (models.FileInfo, error) {
	var out models.FileInfo
	err := h.getJSON(ctx, endpoint(baseURL, storageproto.PathFiles)+"/"+url.PathEscape(name), &out)
	return out, err
}

func (h *httpClient) Health(ctx context.Context, baseURL string) (Response, error) {
	resp, err := h.get(ctx, endpoint(baseURL, storageproto.PathHealth))
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	return readResponse(resp)
}

// postMultipart потоково кодирует файл в multipart-поле "file" и отправляет его POST-запросом.
func (h *httpClient) postMultipart(ctx context.Context, u string, up Upload) (Response, error) {
	src := up.Reader
	var bar *progressBar
	if h.progress != nil && src != nil {
		bar = newProgressBar(h.progress, fmt.Sprintf("Uploading %s", up.FileName), up.Size)
		src = io.TeeReader(src, progressWriter{bar: bar})
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		_ = pw.CloseWithError(writeForm(mw, up.FileName, up.ContentType, src))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, pr)
	if err != nil {
		_ = pr.CloseWithError(err)
		bar.Fail(err)
		return Response{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	bar.render(true, "")

	resp, err := h.c.Do(req)
	if err != nil {
		_ = pr.CloseWithError(err)
		bar.Fail(err)
		return Response{}, fmt.Errorf("post %s: %w", u, err)
	}
	defer resp.Body.Close()

	out, err := readResponse(resp)
	if err != nil {
		bar.Fail(err)
		return Response{}, err
	}
	if out.StatusCode >= http.StatusMultipleChoices {
		bar.Fail(fmt.Errorf("%s", resp.Status))
	} else {
		bar.Finish()
	}

	return out, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// writeForm пишет единственную часть формы с заданным Content-Type и закрывает writer.
func writeForm(mw *multipart.Writer, name, contentType string, r io.Reader) error {
	if contentType == "" {
		contentType = storageproto.DefaultContentType
	}

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		storageproto.FormField, quoteEscaper.Replace(name)))
	hdr.Set("Content-Type", contentType)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		return err
	}
	if r != nil {
		if _, err = io.Copy(part, r); err != nil {
			return err
		}
	}

	return mw.Close()
}

func (h *httpClient) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", u, err)
	}

	return resp, nil
}

func (h *httpClient) getJSON(ctx context.Context, u string, dst any) error {
	resp, err := h.get(ctx, u)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("storage GET failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

func readResponse(resp *http.Response) (Response, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("read response body: %w", err)
	}

	return Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func endpoint(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriterPool = sync.Pool{
		New: func() any { return gzip.NewWriter(nil) },
	}
	gzipReaderPool = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip transparently decompresses gzip request bodies and compresses
// responses for clients that advertise gzip support. Reader and writer
// instances are pooled across requests.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !inflateRequestBody(w, req) {
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, req)

		zw.Close()
		gzipWriterPool.Put(zw)
	})
}

// inflateRequestBody swaps req.Body for a pooled gzip reader. It reports
// false after writing a 400 response when the body is not valid gzip.
func inflateRequestBody(w http.ResponseWriter, req *http.Request) bool {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(req.Body); err != nil {
		gzipReaderPool.Put(zr)
		http.Error(w, "Invalid gzip data", http.StatusBadRequest)
		return false
	}

	req.Body = &pooledBodyReader{reader: zr}
	req.Header.Del("Content-Encoding")
	return true
}

// pooledBodyReader returns its gzip reader to the pool on Close.
type pooledBodyReader struct {
	reader *gzip.Reader
	closed bool
}

func (b *pooledBodyReader) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *pooledBodyReader) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	err := b.reader.Close()
	gzipReaderPool.Put(b.reader)
	return err
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.zw.Write(data)
}

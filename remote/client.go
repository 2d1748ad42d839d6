/*
 * client.go, part of rosusc.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package remote contains small clients for the REST services the pipeline queries:
//KEGG, UniProt, NCBI E-utilities and AlphaFold DB. All requests go through a
//rate limiter, since the services throttle (or drop) clients that query too fast.
package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/time/rate"

	"github.com/pputida/rosusc/config"
)

//StatusError is returned when a service answers with a non-2xx code.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: http status %d", e.URL, e.Code)
}

//NotFound returns true if err is a StatusError with code 404.
func NotFound(err error) bool {
	var s *StatusError
	return errors.As(err, &s) && s.Code == http.StatusNotFound
}

//Client queries the services. Base URLs can be changed, mostly for testing.
type Client struct {
	HTTP    *http.Client
	Limiter *rate.Limiter

	KEGGURL      string
	UniProtURL   string
	NCBIURL      string
	AlphaFoldURL string
	AlphaFoldVer int
}

//New returns a client configured from c.
func New(c config.Remote) *Client {
	r := c.RatePerSecond
	if r <= 0 {
		r = 1
	}
	return &Client{
		HTTP:         &http.Client{Timeout: c.Timeout},
		Limiter:      rate.NewLimiter(rate.Limit(r), 1),
		KEGGURL:      c.KEGG,
		UniProtURL:   c.UniProt,
		NCBIURL:      c.NCBI,
		AlphaFoldURL: c.AlphaFold,
		AlphaFoldVer: c.AlphaFoldVer,
	}
}

//get performs a GET request on url, waiting for the limiter first, and returns the
//body. Gzip-encoded bodies are decompressed.
func (C *Client) get(ctx context.Context, url string) ([]byte, error) {
	if C.Limiter != nil {
		if err := C.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := C.HTTP
	if client == nil {
		client = &http.Client{Timeout: time.Minute}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{resp.StatusCode, url}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if isGzip(body) {
		return gunzip(body)
	}
	return body, nil
}

func isGzip(body []byte) bool {
	return len(body) > 2 && body[0] == 0x1f && body[1] == 0x8b
}

func gunzip(body []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

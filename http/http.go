package http

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

// Timeout bounds every download; RCSB entries are small but the mirror
// can be slow.
const Timeout = 120 * time.Second

// Get fetches the given URL and returns the response body.
func Get(url string) ([]byte, error) {
	client := http.Client{Timeout: Timeout}

	res, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", res.StatusCode)
	}

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}

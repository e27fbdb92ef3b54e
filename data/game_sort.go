package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

const DefaultGameSortSource = "./gameSort.json"

var utf8Bom = []byte("\xEF\xBB\xBF")

var ErrUnsupportedGameSortShape = errors.New("unsupported gameSort document shape")

type GameSortDocument struct {
	GameSort []GameRecord `json:"gameSort"`
}

// ReadGameSort decodes a gameSort document. Both {"gameSort":[...]} and a bare
// array are accepted. Elements that are not objects become empty records so
// that document order is preserved. On any error the returned list is empty.
func ReadGameSort(r io.Reader) ([]GameRecord, error) {

	bts, err := io.ReadAll(r)
	if err != nil {
		return []GameRecord{}, err
	}

	var rawRecords []json.RawMessage

	switch trimmed := bytes.TrimSpace(bytes.TrimPrefix(bts, utf8Bom)); {
	case len(trimmed) > 0 && trimmed[0] == '[':
		if err = json.Unmarshal(trimmed, &rawRecords); err != nil {
			return []GameRecord{}, err
		}
	case len(trimmed) > 0 && trimmed[0] == '{':
		var doc map[string]json.RawMessage
		if err = json.Unmarshal(trimmed, &doc); err != nil {
			return []GameRecord{}, err
		}
		gameSort, ok := doc[GameSortProperty]
		if !ok {
			return []GameRecord{}, fmt.Errorf("%w: missing %s", ErrUnsupportedGameSortShape, GameSortProperty)
		}
		if err = json.Unmarshal(gameSort, &rawRecords); err != nil {
			return []GameRecord{}, fmt.Errorf("%w: %s is not an array", ErrUnsupportedGameSortShape, GameSortProperty)
		}
	default:
		return []GameRecord{}, ErrUnsupportedGameSortShape
	}

	records := make([]GameRecord, 0, len(rawRecords))
	for _, raw := range rawRecords {
		var gr GameRecord
		if err = json.Unmarshal(raw, &gr); err != nil || gr == nil {
			gr = GameRecord{}
		}
		records = append(records, gr)
	}

	return records, nil
}

func WriteGameSort(w io.Writer, records []GameRecord) error {
	if records == nil {
		records = []GameRecord{}
	}
	return json.NewEncoder(w).Encode(&GameSortDocument{GameSort: records})
}

// OpenGameSortSource opens a gameSort document that is either served over
// http(s) or stored on the local filesystem.
func OpenGameSortSource(source string) (io.ReadCloser, error) {

	if IsHttpSource(source) {
		resp, err := http.DefaultClient.Get(source)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, errors.New(resp.Status)
		}

		return resp.Body, nil
	}

	return os.Open(source)
}

func IsHttpSource(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return (scheme == "http" || scheme == "https") && u.Host != ""
}

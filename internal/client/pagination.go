package client

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"hevyctl/internal/hevy"
	"hevyctl/internal/request"
)

// maxPages caps a full listing walk in case the server reports a runaway
// page_count.
const maxPages = 1000

// ListAll walks every page of a resource listing sequentially, one request
// in flight at a time, and merges the collection arrays into a single
// response document. A failure on any page aborts the walk.
func (c *Client) ListAll(ctx context.Context, res hevy.Resource, pageSize int) ([]byte, error) {
	field := res.CollectionField()
	items := []json.RawMessage{}

	for page := 1; ; page++ {
		spec, err := request.List(res, request.Page{Page: page, Size: pageSize})
		if err != nil {
			return nil, err
		}
		body, err := c.Do(ctx, spec)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}
		for _, item := range gjson.GetBytes(body, field).Array() {
			items = append(items, json.RawMessage(item.Raw))
		}

		pageCount := int(gjson.GetBytes(body, "page_count").Int())
		log.Debugf("fetched %s page %d/%d, %d items so far", res, page, pageCount, len(items))
		if page >= pageCount || page >= maxPages {
			break
		}
	}

	return json.Marshal(map[string]any{
		field:        items,
		"page":       1,
		"page_count": 1,
	})
}

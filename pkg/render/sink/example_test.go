package sink_test

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/quotefit/pkg/layout"
	"github.com/matzehuels/quotefit/pkg/quote"
	"github.com/matzehuels/quotefit/pkg/render/sink"
)

func ExampleRenderJSON() {
	res := layout.Solve(quote.Content{ItemCount: 75})

	data, _ := sink.RenderJSON(res)
	var doc struct {
		Phase string `json:"phase"`
		Fits  bool   `json:"fits"`
	}
	_ = json.Unmarshal(data, &doc)

	fmt.Println(doc.Phase, doc.Fits)
	// Output: item-squeeze true
}

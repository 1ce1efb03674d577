package assetgo_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/assetgo"
	"github.com/hupe1980/assetgo/model"
	"github.com/hupe1980/assetgo/source"
)

func Example() {
	ctx := context.Background()

	src := source.NewMemory()
	src.Put("images/items/full/42.png", []byte("png bytes"))
	src.Put("css/main.css", []byte("body { color: red }"))

	resolver := assetgo.New(assetgo.WithSource(src))

	data, err := resolver.EntityImageData(ctx, model.EntityRef{
		Type: model.EntityTypeItem,
		ID:   "42",
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(data.Full)

	href, err := resolver.CacheBustedURL(ctx, "/css/main.css")
	if err != nil {
		panic(err)
	}
	fmt.Println(href)

	fmt.Println(assetgo.EntityURL(model.EntityTypeItem, "42"))
	// Output:
	// /images/items/full/42.847bee0.png
	// /css/main.79ea9f8.css
	// /item/42
}

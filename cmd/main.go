package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/mo"
	"github.com/thanos-io/objstore"
	"go.uber.org/zap"

	"github.com/rangeio/rangeio-go/rangeio"
	"github.com/rangeio/rangeio-go/rangeio/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	ctx := context.Background()
	bucket := objstore.NewInMemBucket()
	err := bucket.Upload(ctx, "greeting.txt", strings.NewReader("hello, ranged world"))
	if err != nil {
		logger.Error("upload failed", zap.Error(err))
		return
	}

	reader := rangeio.NewObjectReader(bucket)

	middle := rangeio.FromBounds(rangeio.Included(7), rangeio.Included(12))
	data, err := reader.Read(ctx, "greeting.txt", rangeio.ReadOptions{Range: mo.Some(middle)})
	if err != nil {
		logger.Error("ranged read failed", zap.Error(err))
		return
	}
	fmt.Println(middle, "->", string(data))

	suffix := rangeio.NewSuffix(5)
	data, err = reader.Read(ctx, "greeting.txt", rangeio.ReadOptions{Range: mo.Some(suffix)})
	if err != nil {
		logger.Error("ranged read failed", zap.Error(err))
		return
	}
	fmt.Println(suffix, "->", string(data))
}

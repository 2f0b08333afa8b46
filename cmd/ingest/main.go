// Command ingest streams a directory CSV file into the configured store,
// a one-shot tool in the same vein as the teacher's scripts/ utilities.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/zipcodetw/zipcodetw/app/config"
	"github.com/zipcodetw/zipcodetw/internal/ingest"
	"github.com/zipcodetw/zipcodetw/internal/store/mongostore"
	"github.com/zipcodetw/zipcodetw/internal/zipdir"
)

func main() {
	csvPath := flag.String("csv", "", "path to the directory CSV file to load")
	mongoURL := flag.String("mongo-url", "mongodb://localhost:27017/zipcodetw", "mongo connection string")
	mongoDB := flag.String("mongo-db", "zipcodetw", "mongo database name")
	flag.Parse()

	if *csvPath == "" {
		if err := config.Load("config/app.yaml"); err == nil && config.C.Ingest.DefaultPath != "" {
			*csvPath = config.C.Ingest.DefaultPath
		}
	}
	if *csvPath == "" {
		log.Fatal("ingest: -csv is required")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	f, err := os.Open(*csvPath)
	if err != nil {
		logger.Fatal("cannot open csv file", zap.Error(err))
	}
	defer f.Close()

	rows, err := ingest.ReadDirectoryCSV(f)
	if err != nil {
		logger.Fatal("cannot read csv file", zap.Error(err))
	}
	fmt.Printf("parsed %d directory rows from %s\n", len(rows), *csvPath)

	ctx := context.Background()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURL))
	if err != nil {
		logger.Fatal("cannot connect to mongo", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	st := mongostore.New(client, *mongoDB, logger)
	builder := zipdir.NewBuilder(st, logger)

	if err := builder.Load(ctx, rows); err != nil {
		logger.Fatal("directory load failed", zap.Error(err))
	}

	fmt.Printf("loaded %d rows into the directory\n", len(rows))
}

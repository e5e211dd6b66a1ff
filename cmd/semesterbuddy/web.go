package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/tdelacour/semesterbuddy/bleve"
	"github.com/tdelacour/semesterbuddy/bolt"
	"github.com/tdelacour/semesterbuddy/files"
	"github.com/tdelacour/semesterbuddy/gin"
)

func init() {
	RootCmd.AddCommand(&WebCommand)
}

var WebCommand = cobra.Command{
	Use:   "web",
	Short: "Start the web server",
	Long:  "Start the web server",
	Run: func(cmd *cobra.Command, args []string) {
		noteIndex := &bleve.NoteIndex{}
		if err := noteIndex.Open(cfg.Bleve.Store); err != nil {
			logger.Fatal("could not open bleve: ", err)
		}
		defer noteIndex.Close()

		var fileStore files.Store
		switch cfg.Files.Mode {
		case "disk":
			fileStore = files.NewDisk(cfg.Files.Root)
		case "bucket", "":
			fileStore = &bolt.FileStore{Driver: boltDriver}
		default:
			logger.Fatalf("unknown file store mode %q", cfg.Files.Mode)
		}

		handler, err := gin.New(
			&bolt.NoteStore{Driver: boltDriver},
			&bolt.NotebookStore{Driver: boltDriver},
			&bolt.LectureStore{Driver: boltDriver},
			noteIndex,
			fileStore,
			&bolt.UserStore{Driver: boltDriver},
			signingKey,
			boltDriver,
			logger,
		)
		if err != nil {
			logger.Fatal("could not create server: ", err)
		}

		addr := cfg.Addr
		if addr == "" {
			addr = ":1721"
		}
		logger.Print("server started, listening on ", addr)
		logger.Fatal(http.ListenAndServe(addr, handler))
	},
}

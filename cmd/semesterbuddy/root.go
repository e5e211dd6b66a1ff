package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tdelacour/semesterbuddy"
	"github.com/tdelacour/semesterbuddy/bolt"
	"github.com/tdelacour/semesterbuddy/jwt"
	"github.com/tdelacour/semesterbuddy/log"
)

type Configuration struct {
	Addr string `toml:"addr"`
	Auth struct {
		Key string `toml:"key"`
	} `toml:"auth"`
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Bleve struct {
		Store string `toml:"store"`
	} `toml:"bleve"`
	Files struct {
		Mode string `toml:"mode"` // bucket or disk
		Root string `toml:"root"` // project root, disk mode only
	} `toml:"files"`
}

var (
	// flags
	env        string
	configFile string

	// logger
	logger log.Logger

	cfg        Configuration
	signingKey semesterbuddy.SigningKey
	encoder    *jwt.EncodeDecoder

	boltDriver *bolt.Driver
)

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
}

var RootCmd = cobra.Command{
	Use:   "semesterbuddy",
	Short: "Notes, notebooks, lectures and files for your semester",
	Long:  "Notes, notebooks, lectures and files for your semester",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New(env)

		// A .env file can override the environment, e.g. for the addr
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file loaded: ", err)
		}

		if configFile == "" {
			configFile = path.Join("configuration", fmt.Sprintf("config.%s.toml", env))
		}

		cfgData, err := ioutil.ReadFile(configFile)
		if err != nil {
			logger.Fatal("could not read configuration file: ", err)
		}
		if err := toml.Unmarshal(cfgData, &cfg); err != nil {
			logger.Fatal("error unmarshalling configuration: ", err)
		}

		keyData, err := ioutil.ReadFile(cfg.Auth.Key)
		if err != nil {
			logger.Fatal("could not open key file: ", err)
		}
		if err := json.Unmarshal(keyData, &signingKey); err != nil {
			logger.Fatal("could not read key file: ", err)
		}
		encoder = jwt.NewEncodeDecoder([]byte(signingKey.Key))

		boltDriver = &bolt.Driver{}
		if err := boltDriver.Open(cfg.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt: ", err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := boltDriver.Close(); err != nil {
			logger.Error("could not close bolt: ", err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

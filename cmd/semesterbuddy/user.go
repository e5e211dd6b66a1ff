package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/tdelacour/semesterbuddy/bolt"
)

func init() {
	UserCommand.AddCommand(&UserAllCommand)
	UserCommand.AddCommand(&TokenCommand)
	RootCmd.AddCommand(&UserCommand)
}

var UserCommand = cobra.Command{
	Use:   "user",
	Short: "Inspect the user store",
	Long:  "Inspect the user store",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var UserAllCommand = cobra.Command{
	Use:   "all",
	Short: "List all the users",
	Long:  "List all the users",
	Run: func(cmd *cobra.Command, args []string) {
		store := &bolt.UserStore{Driver: boltDriver}
		users, err := store.List()
		if err != nil {
			logger.Fatal("error listing users: ", err)
		}

		for _, user := range users {
			data, err := json.Marshal(user)
			if err != nil {
				logger.Fatal(err)
			}
			logger.Print(string(data))
		}
	},
}

var TokenCommand = cobra.Command{
	Use:   "token",
	Short: "Mint a session token for an email",
	Long:  "Mint a session token for an email",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("user token wants 1 argument: the email of the user")
		}

		token, err := encoder.Encode(args[0])
		if err != nil {
			logger.Fatal(err)
		}

		logger.Print(token)
	},
}

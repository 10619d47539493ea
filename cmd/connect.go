package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dynpg/dynpg/client"
)

var (
	host     = "localhost"
	port     = "5432"
	dbname   = ""
	user     = ""
	password = ""
	sslMode  = "disable"
	maxConns = 1
)

func initClientFlags(fs *pflag.FlagSet) {
	fs.StringVar(&host, "host", host, "`host` of the server to connect to")
	cfgVars["host"] = fs.Lookup("host")

	fs.StringVarP(&port, "port", "p", port, "`port` of the server to connect to")
	cfgVars["port"] = fs.Lookup("port")

	fs.StringVarP(&dbname, "database", "d", dbname, "`database` to connect to")
	cfgVars["database"] = fs.Lookup("database")

	fs.StringVarP(&user, "user", "U", user, "`user` to connect as")
	cfgVars["user"] = fs.Lookup("user")

	fs.StringVar(&password, "password", password, "`password` to connect with")
	cfgVars["password"] = fs.Lookup("password")

	fs.StringVar(&sslMode, "ssl-mode", sslMode, "ssl `mode`: disable, require, or verify-full")
	cfgVars["ssl-mode"] = fs.Lookup("ssl-mode")

	fs.IntVar(&maxConns, "conns", maxConns, "`number` of pooled connections")
	cfgVars["conns"] = fs.Lookup("conns")
}

func dataSourceName() string {
	parts := []string{
		fmt.Sprintf("host=%s", host),
		fmt.Sprintf("port=%s", port),
		fmt.Sprintf("sslmode=%s", sslMode),
	}
	if dbname != "" {
		parts = append(parts, fmt.Sprintf("dbname=%s", dbname))
	}
	if user != "" {
		parts = append(parts, fmt.Sprintf("user=%s", user))
	}
	if password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", password))
	}
	return strings.Join(parts, " ")
}

func newClient(ctx context.Context) (*client.Client, error) {
	c, err := client.Connect(ctx,
		client.Config{
			DataSourceName: dataSourceName(),
			MaxConns:       maxConns,
		})
	if err != nil {
		return nil, fmt.Errorf("dynpg: %s", err)
	}
	return c, nil
}

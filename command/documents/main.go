// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/documents/bank"
	"github.com/bitmark-inc/documents/client"
	"github.com/bitmark-inc/documents/configuration"
	"github.com/bitmark-inc/documents/fault"
	"github.com/bitmark-inc/documents/storage"
)

type metadata struct {
	config  *configuration.Configuration
	bank    *bank.Bank
	client  *client.Client
	log     *logger.L
	verbose bool
	yaml    bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that only read the ledger
var readOnlyCommands = map[string]bool{
	"account":   true,
	"accounts":  true,
	"document":  true,
	"documents": true,
	"receiver":  true,
}

// commands that need no configuration
var standaloneCommands = map[string]bool{
	"":         true,
	"derive":   true,
	"generate": true,
	"help":     true,
	"h":        true,
	"version":  true,
}

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "documents"
	app.Usage = "send and list documents on a local ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "yaml, y",
			Usage: " print results as YAML instead of JSON",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an identity key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "derive",
			Usage:     "show the receiver and document addresses of a wallet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*receiving wallet `ADDRESS`",
				},
				cli.IntFlag{
					Name:  "index, i",
					Value: 0,
					Usage: " document `INDEX`",
				},
				cli.StringFlag{
					Name:  "program, p",
					Value: "",
					Usage: " program `ADDRESS` [default program]",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "airdrop",
			Usage:     "credit lamports to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*account `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 1000000000,
					Usage: " amount to credit `LAMPORTS`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "create-receiver",
			Usage:     "create the receiver account of a wallet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "funder, f",
					Value: "",
					Usage: "*paying identity `KEY`",
				},
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*receiving wallet `ADDRESS`",
				},
			},
			Action: runCreateReceiver,
		},
		{
			Name:      "send",
			Usage:     "send a document to a wallet",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*sending identity `KEY`",
				},
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*receiving wallet `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "+document `TEXT`",
				},
				cli.StringFlag{
					Name:  "file, f",
					Value: "",
					Usage: "+document read from `FILE`",
				},
			},
			Action: runSend,
		},
		{
			Name:      "receiver",
			Usage:     "show the receiver account of a wallet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*receiving wallet `ADDRESS`",
				},
			},
			Action: runReceiver,
		},
		{
			Name:      "document",
			Usage:     "show one document of a wallet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*receiving wallet `ADDRESS`",
				},
				cli.IntFlag{
					Name:  "index, i",
					Value: 0,
					Usage: " document `INDEX`",
				},
			},
			Action: runDocument,
		},
		{
			Name:      "documents",
			Usage:     "list all documents of a wallet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "wallet, w",
					Value: "",
					Usage: "*receiving wallet `ADDRESS`",
				},
			},
			Action: runDocuments,
		},
		{
			Name:      "account",
			Usage:     "show a ledger account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*account `ADDRESS`",
				},
			},
			Action: runAccount,
		},
		{
			Name:   "accounts",
			Usage:  "list all stored ledger accounts",
			Action: runAccounts,
		},
		{
			Name:  "version",
			Usage: "display program version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the ledger
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			yaml:    c.GlobalBool("yaml"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		command := c.Args().Get(0)
		if standaloneCommands[command] {
			return nil
		}

		file := c.GlobalString("config-file")
		if "" == file {
			return fmt.Errorf("command: %q requires --config-file", command)
		}

		if m.verbose {
			fmt.Fprintf(m.e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}
		m.config = config

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		m.log = logger.New("main")
		if err := fault.Initialise(); nil != err {
			return err
		}

		readOnly := storage.ReadWrite
		if readOnlyCommands[command] {
			readOnly = storage.ReadOnly
		}
		if err := storage.Initialise(config.DatabasePath(), readOnly); nil != err {
			m.log.Criticalf("storage initialise error: %s", err)
			return err
		}

		m.bank = bank.New(config.SysvarRent(), bank.SystemClock)
		m.client = client.New(m.bank, config.Program)

		m.log.Infof("program: %s  database: %s", config.Program, config.DatabasePath())
		return nil
	}

	// close the ledger
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}

		if nil != m.bank {
			s := m.bank.Statistics()
			m.log.Infof("instructions processed: %d  failed: %d", s.Processed, s.Failed)
			if "" != m.config.MetricsFile {
				if err := m.bank.WriteMetrics(m.config.MetricsFile); nil != err {
					m.log.Errorf("write metrics: %q  error: %s", m.config.MetricsFile, err)
				}
			}
			storage.Finalise()
		}

		if nil != m.log {
			m.log.Info("finished")
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

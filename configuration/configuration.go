// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/documents/account"
	"github.com/bitmark-inc/documents/sysvar"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultProgramID = "A2zNDj1tMdLscxaNzLetdUVRi6E6Jjr54iaQkk7axMcG"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "documents.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "documents.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

func (m LoglevelMap) copy() LoglevelMap {
	c := make(LoglevelMap, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// DatabaseType - location of the LevelDB ledger
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// RentType - rent parameters presented to programs
type RentType struct {
	LamportsPerByteYear uint64  `gluamapper:"lamports_per_byte_year" json:"lamports_per_byte_year"`
	ExemptionThreshold  float64 `gluamapper:"exemption_threshold" json:"exemption_threshold"`
	BurnPercent         int     `gluamapper:"burn_percent" json:"burn_percent"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	ProgramID     string               `gluamapper:"program_id" json:"program_id"`
	MetricsFile   string               `gluamapper:"metrics_file" json:"metrics_file"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Rent          RentType             `gluamapper:"rent" json:"rent"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	// decoded from ProgramID
	Program account.Address `gluamapper:"-" json:"-"`
}

// GetConfiguration - read, decode and verify the configuration
//
// relative paths are made absolute against the data directory and
// the database and log directories are created if missing
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	rent := sysvar.DefaultRent()

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		ProgramID:     defaultProgramID,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Rent: RentType{
			LamportsPerByteYear: rent.LamportsPerByteYear,
			ExemptionThreshold:  rent.ExemptionThreshold,
			BurnPercent:         int(rent.BurnPercent),
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.copy(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Program, err = account.AddressFromBase58(options.ProgramID)
	if nil != err {
		return nil, fmt.Errorf("program_id: %q is not a valid address: %s", options.ProgramID, err)
	}

	if options.Rent.BurnPercent < 0 || options.Rent.BurnPercent > 100 {
		return nil, fmt.Errorf("rent: %+v is not valid", options.Rent)
	}
	if err := options.SysvarRent().Validate(); nil != err {
		return nil, fmt.Errorf("rent: %+v is not valid: %s", options.Rent, err)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = ensureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator
	for _, f := range []string{options.Database.Name, options.Logging.File} {
		switch filepath.Dir(f) {
		case "", ".":
		default:
			return nil, fmt.Errorf("file: %q is not plain name", f)
		}
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.MetricsFile {
		options.MetricsFile = ensureAbsolute(options.DataDirectory, options.MetricsFile)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// DatabasePath - full path to the LevelDB ledger
func (c *Configuration) DatabasePath() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}

// SysvarRent - the configured rent parameters
func (c *Configuration) SysvarRent() sysvar.Rent {
	return sysvar.Rent{
		LamportsPerByteYear: c.Rent.LamportsPerByteYear,
		ExemptionThreshold:  c.Rent.ExemptionThreshold,
		BurnPercent:         uint8(c.Rent.BurnPercent),
	}
}

func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

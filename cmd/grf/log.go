package main

import "github.com/pbanos/grf/grflog"

func (c *rootCmdConfig) logger() *grflog.Logger {
	if !c.verbose {
		return grflog.Discard()
	}
	return grflog.New(nil, "grf")
}

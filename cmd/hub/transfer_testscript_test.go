package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"taskhub/internal/testsupport"
)

func TestTransferScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/transfer",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"envset": testsupport.CmdEnvSet,
			"taskid": testsupport.CmdTaskID,
		},
	})
}

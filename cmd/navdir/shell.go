package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// The wrapper only captures stdout for the commands that print a directory
// to change into; everything else goes straight to the terminal.
const posixWrapper = `{{name}}() {
  case "$1" in
    list|edit|add|remove|tree|-t|init|help|-h|--help)
      command navdir "$@"
      return
      ;;
    back|-b)
      case " $* " in
        *" -l "*|*" --list "*)
          command navdir "$@"
          return
          ;;
      esac
      ;;
  esac
  local dest
  dest="$(command navdir "$@")" || return
  [ -n "$dest" ] && cd -- "$dest"
}
`

const bashCompletion = `_{{name}}_complete() {
  local IFS=$'\n'
  COMPREPLY=($(command navdir --complete "${COMP_WORDS[COMP_CWORD]}"))
}
complete -o default -F _{{name}}_complete {{name}}
`

const zshCompletion = `_{{name}}_complete() {
  local -a favs
  favs=("${(@f)$(command navdir --complete "$PREFIX")}")
  compadd -a favs
}
(( $+functions[compdef] )) && compdef _{{name}}_complete {{name}}
`

func shellScript(shell, name string) (string, error) {
	var script string
	switch shell {
	case "bash":
		script = posixWrapper + bashCompletion
	case "zsh":
		script = posixWrapper + zshCompletion
	default:
		return "", fmt.Errorf("unsupported shell %q (want bash or zsh)", shell)
	}
	return strings.ReplaceAll(script, "{{name}}", name), nil
}

func newInitCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:       "init [bash|zsh]",
		Short:     "Print the shell function that changes directory",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bash", "zsh"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) == 1 {
				shell = args[0]
			}

			script, err := shellScript(shell, name)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), script)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "nd", "Name of the shell function")
	return cmd
}

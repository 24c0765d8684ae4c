package testhelpers

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/gomega"
)

const (
	FakeZFSStateEnv       = "FAKE_ZFS_STATE"
	FakeZFSUnsupportedEnv = "FAKE_ZFS_UNSUPPORTED"
	FakeZFSCallsFile      = ".calls"
)

// fakeZFS keeps one file per dataset under $FAKE_ZFS_STATE holding
// `property=value` lines. Properties named in the comma separated
// $FAKE_ZFS_UNSUPPORTED are rejected the way an older zfs rejects them.
const fakeZFS = `#!/usr/bin/env bash
set -e

state="${FAKE_ZFS_STATE:?}"
echo "$*" >> "$state/.calls"

dataset_file() {
  echo "$state/${1//\//%}"
}

unsupported() {
  [[ ",${FAKE_ZFS_UNSUPPORTED}," == *",$1,"* ]]
}

missing() {
  echo "cannot open '$1': dataset does not exist" >&2
  exit 1
}

case "$1" in
  list)
    shift
    if [ "$1" == "-H" ]; then
      for f in "$state"/*; do
        [ -e "$f" ] || continue
        name="$(basename "$f")"
        printf "%s\t0B\t-\t-\t-\n" "${name//\%//}"
      done
      exit 0
    fi
    [ -e "$(dataset_file "$1")" ] || missing "$1"
    printf "%s\t0B\t-\t-\t-\n" "$1"
    ;;

  create)
    shift
    props=()
    while [ $# -gt 1 ]; do
      case "$1" in
        -V) props+=("volsize=$2"); shift 2 ;;
        -o)
          unsupported "${2%%=*}" && { echo "cannot create '${@: -1}': invalid property '${2%%=*}'" >&2; exit 1; }
          props+=("$2"); shift 2 ;;
        *) echo "invalid option '$1'" >&2; exit 2 ;;
      esac
    done
    f="$(dataset_file "$1")"
    [ ! -e "$f" ] || { echo "cannot create '$1': dataset already exists" >&2; exit 1; }
    : > "$f"
    for p in "${props[@]}"; do echo "$p" >> "$f"; done
    ;;

  destroy)
    f="$(dataset_file "$2")"
    [ -e "$f" ] || missing "$2"
    rm "$f"
    ;;

  get)
    prop="$5"; name="$6"
    unsupported "$prop" && { echo "bad property list: invalid property '$prop'" >&2; exit 2; }
    f="$(dataset_file "$name")"
    [ -e "$f" ] || missing "$name"
    value="$(grep "^$prop=" "$f" | tail -n 1 | cut -d= -f2-)"
    echo "${value:--}"
    ;;

  set)
    prop="${2%%=*}"; name="$3"
    unsupported "$prop" && { echo "cannot set property for '$name': invalid property '$prop'" >&2; exit 1; }
    f="$(dataset_file "$name")"
    [ -e "$f" ] || missing "$name"
    { grep -v "^$prop=" "$f" || true; } > "$f.tmp"
    echo "$2" >> "$f.tmp"
    mv "$f.tmp" "$f"
    ;;

  *)
    echo "unrecognized command '$1'" >&2
    exit 2
    ;;
esac
`

// WriteFakeZFS writes the fake zfs binary into dir and returns its path.
func WriteFakeZFS(dir string) string {
	binPath := filepath.Join(dir, "zfs")
	Expect(os.WriteFile(binPath, []byte(fakeZFS), 0755)).To(Succeed())
	return binPath
}

// FakeZFSCalls returns the argument lists the fake received, oldest first.
func FakeZFSCalls(stateDir string) []string {
	contents, err := os.ReadFile(filepath.Join(stateDir, FakeZFSCallsFile))
	if os.IsNotExist(err) {
		return []string{}
	}
	Expect(err).NotTo(HaveOccurred())

	return strings.Split(strings.TrimSpace(string(contents)), "\n")
}

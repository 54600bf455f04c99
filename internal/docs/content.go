package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with battleview",
		Content: topicQuickstart,
	},
	{
		Name:    "format",
		Title:   "Log File Format",
		Summary: "Markers, headers, and the protocol line shape",
		Content: topicFormat,
	},
	{
		Name:    "selection",
		Title:   "Selecting a Battle",
		Summary: "Picking by index or by matchup header",
		Content: topicSelection,
	},
	{
		Name:    "overrides",
		Title:   "Player Overrides",
		Summary: "Replacing player names and avatars in the replay",
		Content: topicOverrides,
	},
	{
		Name:    "rerun",
		Title:   "Rerun Supervisor",
		Summary: "Re-running the simulation until output is complete",
		Content: topicRerun,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "battleview.yaml fields and defaults",
		Content: topicConfig,
	},
}

const topicQuickstart = `Quick Start
===========

1. (Optional) Write a battleview.yaml config:

    battleview init

2. List the matchups found in a simulation log:

    battleview matchups --folder TestOutput --input output1.txt

3. Export one battle as a replay page:

    battleview render --battle-index 0

   or pick by matchup header:

    battleview render --matchup "Alder vs Cynthia" --occurrence 1

4. Open the generated replay.html in a browser. If your browser blocks
   the embed script from file://, serve the folder over HTTP first:

    cd TestOutput && python3 -m http.server 8001
`

const topicFormat = `Log File Format
===============

Simulation output is UTF-8 text. Invalid byte sequences are replaced,
never fatal. Two layouts are recognized.

Marked layout
-------------

Each battle sits between two marker lines:

    [[[[[
    Alder vs Cynthia
    |player|p1|Alder|1|
    |tier|OU
    |start|
    ...
    ]]]]]

The first non-empty line after the start marker is the battle's header
(its matchup label). Every later line starting with '|' belongs to the
battle's protocol. Anything else inside the block is ignored. A block
whose end marker never arrives — a truncated run — is dropped entirely.

Fallback layout
---------------

When a file contains no marker pair, the whole file is treated as one
battle. The header is the first non-empty line that is not a protocol
line; every '|' line anywhere in the file is collected, in order.

Protocol lines
--------------

A protocol line starts with '|' (no leading whitespace) and carries
pipe-delimited fields. battleview reads four record types:

    |player|p1|Name|Avatar|   player identity for one side
    |tier|FormatName          battle format
    |t:|1700000000            timestamp, epoch seconds
    |start|                   battle start, used as an insertion anchor

Everything else is passed through to the replay untouched.
`

const topicSelection = `Selecting a Battle
==================

By index
--------

    battleview render --battle-index 2

Zero-based position in the order battles appear in the file. Selecting
past the end fails with the number of battles actually available.

By matchup
----------

    battleview render --matchup "Alder vs Cynthia"

Compared against each battle's header, case-insensitively, after
trimming whitespace. When the same matchup appears more than once, pick
a later occurrence (zero-based):

    battleview render --matchup "Alder vs Cynthia" --occurrence 1

Asking for an occurrence that does not exist fails and reports how many
matches were found.

Listing
-------

    battleview matchups --top 20

Prints headers with their occurrence counts, most frequent first; ties
keep the order they first appeared in the file.
`

const topicOverrides = `Player Overrides
================

The replay shows the names and avatars from the log's |player| records.
Override either without touching the rest of the log:

    battleview render --p1-name Alder --p1-avatar 60
    battleview render --both-name Spectator

--p1-name / --p2-name replace the name field of the matching player
record. --p1-avatar / --p2-avatar replace the avatar id (an opaque
token — official avatar ids are numbers, but any string is accepted).
--both-name / --both-avatar apply to both sides unless a side-specific
flag wins.

When a side has no |player| record at all and an override for it was
given, a record is synthesized and inserted just before the |start|
line (or at the top of the log when there is none). Missing pieces fall
back to the side token as name and "1" as avatar.

Fields without an override are left byte-identical.
`

const topicRerun = `Rerun Supervisor
================

Simulation runs sometimes die before writing a complete log. The rerun
supervisor produces output1.txt, output2.txt, ... and re-invokes the
simulation for any file that does not yet contain the expected number
of completed battles:

    battleview rerun --command "node runSimulations.js" --expected 1 --iterations 100

The command runs under bash with the target output path as $1. A file
counts as complete when it contains at least --expected closing marker
lines; completeness is a substring count, not a parse. Files already
complete are skipped, so an interrupted supervisor picks up where it
left off.

Attempt counts per file are kept in rerun-state.json inside the output
directory, along with a run id. --max-attempts caps retries per file
(default: retry until interrupted, matching the original wrapper).
`

const topicConfig = `Configuration Reference
=======================

battleview reads battleview.yaml from the working directory (or the
path given with --config). Every field is optional; flags override the
file. A missing file means defaults.

    folder: TestOutput          # directory holding simulation output
    input: output1.txt          # log file name inside folder
    output: replay.html         # replay page name inside folder
    embed-base: https://play.pokemonshowdown.com

    rerun:
      command: node runSimulations.js
      expected-battles: 1       # completed blocks required per file
      max-iterations: 100       # output files to produce
      retry-delay: 2            # seconds between attempts
      max-attempts: 0           # per-file cap, 0 = unlimited

'embed-base' must be an http(s) URL; the replay page loads
<embed-base>/js/replay-embed.js.
`

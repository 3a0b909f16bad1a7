package main

const helpText = `HDF5 injection file merge tool for GRB triggered searches

Usage: injmerge [options] <injections.h5...>

injmerge merges a list of HDF5 injection/trigger files into one output file,
keeping only the injections whose total angular momentum makes an angle theta
with the line of sight at or below a given threshold.

Input format:

every input file holds a group (by default "injections") of equal-length 1-D
numeric datasets, one per injection parameter. All input files must share the
same dataset layout; a file with missing or extra datasets is an error.

the datasets used to compute theta are (all mandatory):

- mass1, mass2 (solar masses)
- spin1x, spin1y, spin1z (dimensionless)
- spin2x, spin2y, spin2z (dimensionless)
- inclination (radians)

the orbital angular momentum entering theta is Newtonian and is evaluated at
the reference frequency given with the f-lower option. It is an error to run
a merge without a positive reference frequency.

Output:

one HDF5 file with the same group name, the kept rows of every input dataset
in input order, plus a "theta" dataset with the computed angle of each kept
row. The output is written even when no injection survives the threshold, so
that downstream tools see an explicit empty set. Datasets that are not 1-D
numeric (strings, subgroups) are skipped with a warning.

Configuration options:

injmerge accepts via the "config" flag a configuration file in toml format
instead of (or in addition to) command line options. Options given on the
command line override the values of the configuration file, and input files
given as arguments replace the file list of the configuration:

  output    = file where the merged injections will be created
  group     = name of the group holding the injection datasets
  max-theta = maximum theta angle in degrees
  f-lower   = reference frequency in Hz
  files     = list of input files to merge

Options:

  -output    FILE  save merged injections to FILE
  -group     NAME  group holding the injection datasets
  -max-theta DEG   keep injections with theta at or below DEG degrees
  -f-lower   HZ    reference frequency for the orbital angular momentum
  -config    FILE  load settings from a configuration file
  -list            print per file injection counts and theta ranges and exit
  -list-files      print per file dataset layout and exit
  -version         print injmerge version and exit
  -help            print this message and exit

Examples:

# merge three injection files, keeping injections within 30 degrees
$ injmerge -max-theta 30 -f-lower 30 \
  -output /var/grb/GRB170817A/found-injections.h5 \
  bbh-injections-1.h5 bbh-injections-2.h5 bbh-injections-3.h5

# same merge driven by a configuration file
$ injmerge -config /usr/local/etc/grb/merge.toml

# inspect what a threshold would keep without writing anything
$ injmerge -list -max-theta 30 -f-lower 30 bbh-injections-*.h5

# print the dataset layout of the inputs
$ injmerge -list-files bbh-injections-*.h5
`

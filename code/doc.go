// Package code provides classical-code utilities layered beside the cube:
// Hamming distance on packed bit vectors, generation of the binary Hamming
// code Ham(r, 2), coset construction by XOR shift, and loading/saving of
// newline-delimited code files.
//
// The deterministic construction strategies (package construct) consume
// Ham(r, 2) and its cosets; the search and verify packages only need the
// distance primitive. File I/O exists so externally computed codes — e.g. a
// known perfect code of a neighboring cube — can be fed to the repair
// strategy and so found codes can be written out.
package code

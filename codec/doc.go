// Package codec implements the primitive and structured DER encoders and
// decoders for the catalog of structures this module supports: object
// identifiers, integers (small signed, multi-byte signed/unsigned,
// enumerated), bit strings, octet strings, name-value strings, UTC and
// generalized time, and the RDN/Name hierarchy built from them.
//
// Every encoder follows the two-pass sizing protocol in
// internal/outbuf: it computes the required output size once, then either
// reports that size (a sizing query), writes into a caller-supplied
// buffer, or allocates a fresh one, per the request's flags. Every
// decoder verifies its leading tag, decodes the DER length, and produces
// either an owning Go value (OID text, integers, Time, RDN, Name) or,
// for byte-blob outputs (octet string, bit string, name-value), a slice
// that is either freshly copied or aliased into the input per the
// request's NoCopy flag.
package codec

// Package reported implements the device-initiated state confirmation.
//
// Devices report what they actually run. The reported version (rptdVrs) is
// accepted as given, even when it regresses, and is mirrored into the desired
// section so delta notifications carry it. rptdVrs 0 means the device was
// reset and wipes the reported section.
//
// Schedule arrays are reported as a fixed-position overlay: each incoming
// event lands in the slot named by its pos field (or its index), on top of the
// array already stored. Count hints (rcrEvntsCfgCnt, oneEvntsCfgCnt) resize
// the stored array first.
//
// Routes:
//
//	PUT /shadows/:id/reported
package reported

package types

// ============================================================================
// NFS RPC Program and Version
// ============================================================================

const (
	// ProgramNFS is the NFS RPC program number per RFC 1813 Section 1.
	ProgramNFS uint32 = 100003

	// NFSVersion3 is the protocol version this package implements.
	NFSVersion3 uint32 = 3
)

// ============================================================================
// NFSv3 Procedure Numbers (RFC 1813 Section 3)
// ============================================================================

const (
	NFSProc3Null        uint32 = 0
	NFSProc3GetAttr     uint32 = 1
	NFSProc3SetAttr     uint32 = 2
	NFSProc3Lookup      uint32 = 3
	NFSProc3Access      uint32 = 4
	NFSProc3ReadLink    uint32 = 5
	NFSProc3Read        uint32 = 6
	NFSProc3Write       uint32 = 7
	NFSProc3Create      uint32 = 8
	NFSProc3Mkdir       uint32 = 9
	NFSProc3Symlink     uint32 = 10
	NFSProc3Mknod       uint32 = 11
	NFSProc3Remove      uint32 = 12
	NFSProc3Rmdir       uint32 = 13
	NFSProc3Rename      uint32 = 14
	NFSProc3Link        uint32 = 15
	NFSProc3ReadDir     uint32 = 16
	NFSProc3ReadDirPlus uint32 = 17
	NFSProc3FsStat      uint32 = 18
	NFSProc3FsInfo      uint32 = 19
	NFSProc3PathConf    uint32 = 20
	NFSProc3Commit      uint32 = 21
)

// ============================================================================
// Status Codes (RFC 1813 Section 2.6, nfsstat3)
// ============================================================================
//
// Every NFSv3 result starts with one of these codes. NFS3OK selects the
// "resok" arm of a result union; every other member selects the shared
// "resfail" arm.

const (
	// NFS3OK indicates the call completed successfully.
	NFS3OK uint32 = 0

	// NFS3ErrPerm: not owner (EPERM). The operation requires ownership
	// or elevated privileges.
	NFS3ErrPerm uint32 = 1

	// NFS3ErrNoEnt: no such file or directory (ENOENT).
	NFS3ErrNoEnt uint32 = 2

	// NFS3ErrIO: hard I/O error during the operation (EIO).
	NFS3ErrIO uint32 = 5

	// NFS3ErrNxIO: no such device or address (ENXIO).
	NFS3ErrNxIO uint32 = 6

	// NFS3ErrAccess: permission denied (EACCES).
	NFS3ErrAccess uint32 = 13

	// NFS3ErrExist: file exists (EEXIST).
	NFS3ErrExist uint32 = 17

	// NFS3ErrXDev: attempted cross-device hard link (EXDEV).
	NFS3ErrXDev uint32 = 18

	// NFS3ErrNoDev: no such device (ENODEV).
	NFS3ErrNoDev uint32 = 19

	// NFS3ErrNotDir: not a directory (ENOTDIR).
	NFS3ErrNotDir uint32 = 20

	// NFS3ErrIsDir: is a directory (EISDIR).
	NFS3ErrIsDir uint32 = 21

	// NFS3ErrInval: invalid argument (EINVAL).
	NFS3ErrInval uint32 = 22

	// NFS3ErrFBig: file too large (EFBIG).
	NFS3ErrFBig uint32 = 27

	// NFS3ErrNoSpc: no space left on device (ENOSPC).
	NFS3ErrNoSpc uint32 = 28

	// NFS3ErrRofs: read-only filesystem (EROFS).
	NFS3ErrRofs uint32 = 30

	// NFS3ErrMLink: too many hard links (EMLINK).
	NFS3ErrMLink uint32 = 31

	// NFS3ErrNameTooLong: filename exceeds server limits.
	NFS3ErrNameTooLong uint32 = 63

	// NFS3ErrNotEmpty: directory not empty (ENOTEMPTY).
	NFS3ErrNotEmpty uint32 = 66

	// NFS3ErrDQuot: resource quota exceeded (EDQUOT).
	NFS3ErrDQuot uint32 = 69

	// NFS3ErrStale: stale file handle; the object was removed or the
	// handle is no longer valid (ESTALE).
	NFS3ErrStale uint32 = 70

	// NFS3ErrRemote: too many levels of remote in path (EREMOTE).
	NFS3ErrRemote uint32 = 71

	// NFS3ErrBadHandle: illegal NFS file handle.
	NFS3ErrBadHandle uint32 = 10001

	// NFS3ErrNotSync: SETATTR guard mismatch (update synchronization).
	NFS3ErrNotSync uint32 = 10002

	// NFS3ErrBadCookie: stale READDIR or READDIRPLUS cookie.
	NFS3ErrBadCookie uint32 = 10003

	// NFS3ErrNotSupp: operation not supported.
	NFS3ErrNotSupp uint32 = 10004

	// NFS3ErrTooSmall: buffer or request too small.
	NFS3ErrTooSmall uint32 = 10005

	// NFS3ErrServerFault: unmappable server-side error.
	NFS3ErrServerFault uint32 = 10006

	// NFS3ErrBadType: object type not supported by the server.
	NFS3ErrBadType uint32 = 10007

	// NFS3ErrJukebox: the operation would take too long; the client
	// should retry later.
	NFS3ErrJukebox uint32 = 10008
)

// ============================================================================
// File Types (RFC 1813 Section 2.6, ftype3)
// ============================================================================

// Ftype3 is the type of a filesystem object. Encoded as an XDR enum:
// values outside the declared set are rejected on both encode and decode.
type Ftype3 uint32

const (
	// NF3Reg is a regular file.
	NF3Reg Ftype3 = 1
	// NF3Dir is a directory.
	NF3Dir Ftype3 = 2
	// NF3Blk is a block special device.
	NF3Blk Ftype3 = 3
	// NF3Chr is a character special device.
	NF3Chr Ftype3 = 4
	// NF3Lnk is a symbolic link.
	NF3Lnk Ftype3 = 5
	// NF3Sock is a socket.
	NF3Sock Ftype3 = 6
	// NF3Fifo is a named pipe.
	NF3Fifo Ftype3 = 7
)

// ============================================================================
// ACCESS Permission Bits (RFC 1813 Section 3.3.4)
// ============================================================================

const (
	// AccessRead: read data from a file or read a directory.
	AccessRead uint32 = 0x0001
	// AccessLookup: look up a name in a directory.
	AccessLookup uint32 = 0x0002
	// AccessModify: rewrite existing file data or modify directory entries.
	AccessModify uint32 = 0x0004
	// AccessExtend: write new data or add directory entries.
	AccessExtend uint32 = 0x0008
	// AccessDelete: delete an existing directory entry.
	AccessDelete uint32 = 0x0010
	// AccessExecute: execute a file or traverse a directory.
	AccessExecute uint32 = 0x0020
)

// ============================================================================
// FSINFO Properties Bits (RFC 1813 Section 3.3.19)
// ============================================================================

const (
	// FSFLink: the filesystem supports hard links.
	FSFLink uint32 = 0x0001
	// FSFSymlink: the filesystem supports symbolic links.
	FSFSymlink uint32 = 0x0002
	// FSFHomogeneous: PATHCONF results are identical for every file.
	FSFHomogeneous uint32 = 0x0008
	// FSFCanSetTime: the server can set file times via SETATTR.
	FSFCanSetTime uint32 = 0x0010
)

// ============================================================================
// Size Limits (RFC 1813 Section 2.4)
// ============================================================================

const (
	// FileHandleMaxSize is the maximum length of an NFSv3 file handle
	// (NFS3_FHSIZE).
	FileHandleMaxSize uint32 = 64

	// FilenameMaxSize is the wire-level bound this codec enforces on a
	// single pathname component. PATHCONF may advertise a smaller
	// per-filesystem limit; 255 is the conventional ceiling.
	FilenameMaxSize uint32 = 255
)

package types

// ============================================================================
// Basic Data Types (RFC 1813 Section 2.5)
// ============================================================================

// Specdata3 carries the major and minor device numbers of a special file.
// For non-device objects both fields are zero.
type Specdata3 struct {
	Specdata1 uint32
	Specdata2 uint32
}

// NFSTime3 is a timestamp: seconds and nanoseconds since the Unix epoch.
type NFSTime3 struct {
	Seconds  uint32
	Nseconds uint32
}

// FileHandle3 is an NFSv3 file handle (nfs_fh3): up to 64 bytes of opaque
// server-generated data identifying a filesystem object. The codec treats
// the contents as uninterpreted octets; only the server that issued a
// handle can decode its meaning.
type FileHandle3 struct {
	Data []byte
}

// Fattr3 contains the attributes of a filesystem object (RFC 1813 Section
// 2.6). The wire field order is fixed by the fattr3 schema: type, mode,
// nlink, uid, gid, size, used, rdev, fsid, fileid, atime, mtime, ctime.
type Fattr3 struct {
	// Type is the object type (regular file, directory, ...).
	Type Ftype3

	// Mode holds the protection bits in the low 12 bits, POSIX-style.
	Mode uint32

	// Nlink is the hard link count.
	Nlink uint32

	// UID and GID identify the owner and owning group.
	UID uint32
	GID uint32

	// Size is the object size in bytes; Used is the bytes of disk space
	// the object actually consumes.
	Size uint64
	Used uint64

	// Rdev is the device number pair, meaningful only for NF3Blk and
	// NF3Chr objects.
	Rdev Specdata3

	// Fsid identifies the filesystem containing the object; Fileid is a
	// number unique within that filesystem (the inode number).
	Fsid   uint64
	Fileid uint64

	// Atime, Mtime and Ctime are the access, modification, and attribute
	// change times.
	Atime NFSTime3
	Mtime NFSTime3
	Ctime NFSTime3
}

// DiropArgs3 names a directory entry: the handle of the directory and the
// name of the entry within it.
type DiropArgs3 struct {
	Dir  FileHandle3
	Name string
}

// ============================================================================
// GETATTR (RFC 1813 Section 3.3.1)
// ============================================================================

// GetAttr3Args are the arguments of the GETATTR procedure.
type GetAttr3Args struct {
	Object FileHandle3
}

// GetAttr3ResOk is the GETATTR result payload: the object's attributes.
// GETATTR carries no distinct failure fields, so the result union uses this
// shape for both arms.
type GetAttr3ResOk struct {
	ObjAttributes Fattr3
}

// GetAttr3Res is the discriminated GETATTR result.
type GetAttr3Res struct {
	Status  uint32
	Resok   *GetAttr3ResOk
	Resfail *GetAttr3ResOk
}

// ============================================================================
// LOOKUP (RFC 1813 Section 3.3.3)
// ============================================================================

// Lookup3Args are the arguments of the LOOKUP procedure.
type Lookup3Args struct {
	What DiropArgs3
}

// Lookup3ResOk is the successful LOOKUP payload: the handle of the object
// found, plus post-operation attributes of the object and of the searched
// directory. The attribute fields are optional (post_op_attr); nil means
// the server did not supply them.
type Lookup3ResOk struct {
	Object        FileHandle3
	ObjAttributes *Fattr3
	DirAttributes *Fattr3
}

// Lookup3ResFail is the LOOKUP failure payload: post-operation attributes
// of the searched directory, to keep client caches warm even on ENOENT.
type Lookup3ResFail struct {
	DirAttributes *Fattr3
}

// Lookup3Res is the discriminated LOOKUP result.
type Lookup3Res struct {
	Status  uint32
	Resok   *Lookup3ResOk
	Resfail *Lookup3ResFail
}

// ============================================================================
// ACCESS (RFC 1813 Section 3.3.4)
// ============================================================================

// Access3Args are the arguments of the ACCESS procedure: the object and a
// bitmap of Access* permissions the client wants checked.
type Access3Args struct {
	Object FileHandle3
	Access uint32
}

// Access3ResOk is the successful ACCESS payload: post-operation attributes
// and the bitmap of permissions the server actually grants, which may be a
// subset of those requested.
type Access3ResOk struct {
	ObjAttributes *Fattr3
	Access        uint32
}

// Access3ResFail is the ACCESS failure payload.
type Access3ResFail struct {
	ObjAttributes *Fattr3
}

// Access3Res is the discriminated ACCESS result.
type Access3Res struct {
	Status  uint32
	Resok   *Access3ResOk
	Resfail *Access3ResFail
}

// ============================================================================
// FSINFO (RFC 1813 Section 3.3.19)
// ============================================================================

// FsInfo3Args are the arguments of the FSINFO procedure, issued against the
// filesystem root handle obtained from MOUNT.
type FsInfo3Args struct {
	Fsroot FileHandle3
}

// FsInfo3ResOk is the successful FSINFO payload: static capabilities and
// preferences of the filesystem.
type FsInfo3ResOk struct {
	ObjAttributes *Fattr3

	// Rtmax, Rtpref and Rtmult are the maximum, preferred, and suggested
	// multiple for READ request sizes; Wtmax, Wtpref and Wtmult are the
	// same for WRITE.
	Rtmax  uint32
	Rtpref uint32
	Rtmult uint32
	Wtmax  uint32
	Wtpref uint32
	Wtmult uint32

	// Dtpref is the preferred READDIR request size.
	Dtpref uint32

	// Maxfilesize is the largest file the filesystem can store.
	Maxfilesize uint64

	// TimeDelta is the server's time granularity for SETATTR.
	TimeDelta NFSTime3

	// Properties is a bitmap of FSF* capability bits.
	Properties uint32
}

// FsInfo3ResFail is the FSINFO failure payload.
type FsInfo3ResFail struct {
	ObjAttributes *Fattr3
}

// FsInfo3Res is the discriminated FSINFO result.
type FsInfo3Res struct {
	Status  uint32
	Resok   *FsInfo3ResOk
	Resfail *FsInfo3ResFail
}

// ============================================================================
// PATHCONF (RFC 1813 Section 3.3.20)
// ============================================================================

// PathConf3Args are the arguments of the PATHCONF procedure.
type PathConf3Args struct {
	Object FileHandle3
}

// PathConf3ResOk is the successful PATHCONF payload: the POSIX pathconf
// values relevant over NFS.
type PathConf3ResOk struct {
	ObjAttributes *Fattr3

	// Linkmax is the maximum hard link count; NameMax the longest
	// filename the filesystem accepts.
	Linkmax uint32
	NameMax uint32

	// NoTrunc: the server rejects names longer than NameMax instead of
	// silently truncating them.
	NoTrunc bool

	// ChownRestricted: only a privileged user may change ownership.
	ChownRestricted bool

	// CaseInsensitive and CasePreserving describe filename case handling.
	CaseInsensitive bool
	CasePreserving  bool
}

// PathConf3ResFail is the PATHCONF failure payload.
type PathConf3ResFail struct {
	ObjAttributes *Fattr3
}

// PathConf3Res is the discriminated PATHCONF result.
type PathConf3Res struct {
	Status  uint32
	Resok   *PathConf3ResOk
	Resfail *PathConf3ResFail
}

package types

import (
	"github.com/marmos91/nfswire/internal/protocol/xdr"
)

// ============================================================================
// Wire Schemas
// ============================================================================
//
// One schema per declared type, field order exactly as in RFC 1813. These
// tables are the wire contract: the composite codec walks them in declared
// order, and the order never changes once published. All schemas are built
// and registered during package initialization; a duplicate registration
// panics at startup rather than surfacing as a runtime decode bug.

// Ftype3Set is the declared member set of the ftype3 enum.
var Ftype3Set = xdr.NewEnumSet("ftype3",
	uint32(NF3Reg), uint32(NF3Dir), uint32(NF3Blk), uint32(NF3Chr),
	uint32(NF3Lnk), uint32(NF3Sock), uint32(NF3Fifo),
)

// Nfsstat3Set is the declared member set of the nfsstat3 status codes. It
// doubles as the result unions' discriminant set: a status outside it fails
// decoding with ErrUnknownDiscriminant.
var Nfsstat3Set = xdr.NewEnumSet("nfsstat3",
	NFS3OK, NFS3ErrPerm, NFS3ErrNoEnt, NFS3ErrIO, NFS3ErrNxIO,
	NFS3ErrAccess, NFS3ErrExist, NFS3ErrXDev, NFS3ErrNoDev, NFS3ErrNotDir,
	NFS3ErrIsDir, NFS3ErrInval, NFS3ErrFBig, NFS3ErrNoSpc, NFS3ErrRofs,
	NFS3ErrMLink, NFS3ErrNameTooLong, NFS3ErrNotEmpty, NFS3ErrDQuot,
	NFS3ErrStale, NFS3ErrRemote, NFS3ErrBadHandle, NFS3ErrNotSync,
	NFS3ErrBadCookie, NFS3ErrNotSupp, NFS3ErrTooSmall, NFS3ErrServerFault,
	NFS3ErrBadType, NFS3ErrJukebox,
)

// ----------------------------------------------------------------------------
// Basic structures
// ----------------------------------------------------------------------------

// Specdata3Schema: device number pair. Fixed-size composite, no count prefix.
var Specdata3Schema = xdr.MustSchema("specdata3", Specdata3{},
	xdr.Field{Name: "specdata1", Kind: xdr.KindUint32},
	xdr.Field{Name: "specdata2", Kind: xdr.KindUint32},
)

// NFSTime3Schema: timestamp pair. Fixed-size composite, no count prefix.
var NFSTime3Schema = xdr.MustSchema("nfstime3", NFSTime3{},
	xdr.Field{Name: "seconds", Kind: xdr.KindUint32},
	xdr.Field{Name: "nseconds", Kind: xdr.KindUint32},
)

// FileHandle3Schema: variable-length opaque handle, at most 64 bytes.
var FileHandle3Schema = xdr.MustSchema("nfs_fh3", FileHandle3{},
	xdr.Field{Name: "data", Kind: xdr.KindOpaque, MaxLen: FileHandleMaxSize},
)

// Fattr3Schema: file attributes. The field order below is the bit-for-bit
// wire layout shared with every other NFSv3 implementation.
var Fattr3Schema = xdr.MustSchema("fattr3", Fattr3{},
	xdr.Field{Name: "type", Kind: xdr.KindEnum, Enum: Ftype3Set},
	xdr.Field{Name: "mode", Kind: xdr.KindUint32},
	xdr.Field{Name: "nlink", Kind: xdr.KindUint32},
	xdr.Field{Name: "uid", Kind: xdr.KindUint32},
	xdr.Field{Name: "gid", Kind: xdr.KindUint32},
	xdr.Field{Name: "size", Kind: xdr.KindUint64},
	xdr.Field{Name: "used", Kind: xdr.KindUint64},
	xdr.Field{Name: "rdev", Kind: xdr.KindStruct, Elem: Specdata3Schema},
	xdr.Field{Name: "fsid", Kind: xdr.KindUint64},
	xdr.Field{Name: "fileid", Kind: xdr.KindUint64},
	xdr.Field{Name: "atime", Kind: xdr.KindStruct, Elem: NFSTime3Schema},
	xdr.Field{Name: "mtime", Kind: xdr.KindStruct, Elem: NFSTime3Schema},
	xdr.Field{Name: "ctime", Kind: xdr.KindStruct, Elem: NFSTime3Schema},
)

// DiropArgs3Schema: directory handle plus entry name.
var DiropArgs3Schema = xdr.MustSchema("diropargs3", DiropArgs3{},
	xdr.Field{Name: "dir", Kind: xdr.KindStruct, Elem: FileHandle3Schema},
	xdr.Field{Name: "name", Kind: xdr.KindString, MaxLen: FilenameMaxSize},
)

// ----------------------------------------------------------------------------
// GETATTR
// ----------------------------------------------------------------------------

var GetAttr3ArgsSchema = xdr.MustSchema("GETATTR3args", GetAttr3Args{},
	xdr.Field{Name: "object", Kind: xdr.KindStruct, Elem: FileHandle3Schema},
)

var GetAttr3ResOkSchema = xdr.MustSchema("GETATTR3resok", GetAttr3ResOk{},
	xdr.Field{Name: "obj_attributes", Kind: xdr.KindStruct, Elem: Fattr3Schema},
)

// GetAttr3ResSchema: both arms share the resok shape. GETATTR has no
// distinct failure fields, so the union's two branch schemas are the same
// table rather than a missing branch.
var GetAttr3ResSchema = xdr.MustUnion("GETATTR3res", GetAttr3Res{},
	xdr.UnionConfig{
		OkStatus: NFS3OK,
		Statuses: Nfsstat3Set,
		Ok:       GetAttr3ResOkSchema,
		Fail:     GetAttr3ResOkSchema,
	},
)

// ----------------------------------------------------------------------------
// LOOKUP
// ----------------------------------------------------------------------------

var Lookup3ArgsSchema = xdr.MustSchema("LOOKUP3args", Lookup3Args{},
	xdr.Field{Name: "what", Kind: xdr.KindStruct, Elem: DiropArgs3Schema},
)

var Lookup3ResOkSchema = xdr.MustSchema("LOOKUP3resok", Lookup3ResOk{},
	xdr.Field{Name: "object", Kind: xdr.KindStruct, Elem: FileHandle3Schema},
	xdr.Field{Name: "obj_attributes", Kind: xdr.KindOptional, Elem: Fattr3Schema},
	xdr.Field{Name: "dir_attributes", Kind: xdr.KindOptional, Elem: Fattr3Schema},
)

var Lookup3ResFailSchema = xdr.MustSchema("LOOKUP3resfail", Lookup3ResFail{},
	xdr.Field{Name: "dir_attributes", Kind: xdr.KindOptional, Elem: Fattr3Schema},
)

var Lookup3ResSchema = xdr.MustUnion("LOOKUP3res", Lookup3Res{},
	xdr.UnionConfig{
		OkStatus: NFS3OK,
		Statuses: Nfsstat3Set,
		Ok:       Lookup3ResOkSchema,
		Fail:     Lookup3ResFailSchema,
	},
)

// ----------------------------------------------------------------------------
// ACCESS
// ----------------------------------------------------------------------------

var Access3ArgsSchema = xdr.MustSchema("ACCESS3args", Access3Args{},
	xdr.Field{Name: "object", Kind: xdr.KindStruct, Elem: FileHandle3Schema},
	xdr.Field{Name: "access", Kind: xdr.KindUint32},
)

var Access3ResOkSchema = xdr.MustSchema("ACCESS3resok", Access3ResOk{},
	xdr.Field{Name: "obj_attributes", Kind: xdr.KindOptional, Elem: Fattr3Schema},
	xdr.Field{Name: "access", Kind: xdr.KindUint32},
)

var Access3ResFailSchema = xdr.MustSchema("ACCESS3resfail", Access3ResFail{},
	xdr.Field{Name: "obj_attributes", Kind: xdr.KindOptional, Elem: Fattr3Schema},
)

var Access3ResSchema = xdr.MustUnion("ACCESS3res", Access3Res{},
	xdr.UnionConfig{
		OkStatus: NFS3OK,
		Statuses: Nfsstat3Set,
		Ok:       Access3ResOkSchema,
		Fail:     Access3ResFailSchema,
	},
)

// ----------------------------------------------------------------------------
// FSINFO
// ----------------------------------------------------------------------------

var FsInfo3ArgsSchema = xdr.MustSchema("FSINFO3args", FsInfo3Args{},
	xdr.Field{Name: "fsroot", Kind: xdr.KindStruct, Elem: FileHandle3Schema},
)

var FsInfo3ResOkSchema = xdr.MustSchema("FSINFO3resok", FsInfo3ResOk{},
	xdr.Field{Name: "obj_attributes", Kind: xdr.KindOptional, Elem: Fattr3Schema},
	xdr.Field{Name: "rtmax", Kind: xdr.KindUint32},
	xdr.Field{Name: "rtpref", Kind: xdr.KindUint32},
	xdr.Field{Name: "rtmult", Kind: xdr.KindUint32},
	xdr.Field{Name: "wtmax", Kind: xdr.KindUint32},
	xdr.Field{Name: "wtpref", Kind: xdr.KindUint32},
	xdr.Field{Name: "wtmult", Kind: xdr.KindUint32},
	xdr.Field{Name: "dtpref", Kind: xdr.KindUint32},
	xdr.Field{Name: "maxfilesize", Kind: xdr.KindUint64},
	xdr.Field{Name: "time_delta", Kind: xdr.KindStruct, Elem: NFSTime3Schema},
	xdr.Field{Name: "properties", Kind: xdr.KindUint32},
)

var FsInfo3ResFailSchema = xdr.MustSchema("FSINFO3resfail", FsInfo3ResFail{},
	xdr.Field{Name: "obj_attributes", Kind: xdr.KindOptional, Elem: Fattr3Schema},
)

var FsInfo3ResSchema = xdr.MustUnion("FSINFO3res", FsInfo3Res{},
	xdr.UnionConfig{
		OkStatus: NFS3OK,
		Statuses: Nfsstat3Set,
		Ok:       FsInfo3ResOkSchema,
		Fail:     FsInfo3ResFailSchema,
	},
)

// ----------------------------------------------------------------------------
// PATHCONF
// ----------------------------------------------------------------------------

var PathConf3ArgsSchema = xdr.MustSchema("PATHCONF3args", PathConf3Args{},
	xdr.Field{Name: "object", Kind: xdr.KindStruct, Elem: FileHandle3Schema},
)

var PathConf3ResOkSchema = xdr.MustSchema("PATHCONF3resok", PathConf3ResOk{},
	xdr.Field{Name: "obj_attributes", Kind: xdr.KindOptional, Elem: Fattr3Schema},
	xdr.Field{Name: "linkmax", Kind: xdr.KindUint32},
	xdr.Field{Name: "name_max", Kind: xdr.KindUint32},
	xdr.Field{Name: "no_trunc", Kind: xdr.KindBool},
	xdr.Field{Name: "chown_restricted", Kind: xdr.KindBool},
	xdr.Field{Name: "case_insensitive", Kind: xdr.KindBool},
	xdr.Field{Name: "case_preserving", Kind: xdr.KindBool},
)

var PathConf3ResFailSchema = xdr.MustSchema("PATHCONF3resfail", PathConf3ResFail{},
	xdr.Field{Name: "obj_attributes", Kind: xdr.KindOptional, Elem: Fattr3Schema},
)

var PathConf3ResSchema = xdr.MustUnion("PATHCONF3res", PathConf3Res{},
	xdr.UnionConfig{
		OkStatus: NFS3OK,
		Statuses: Nfsstat3Set,
		Ok:       PathConf3ResOkSchema,
		Fail:     PathConf3ResFailSchema,
	},
)

func init() {
	for _, c := range []xdr.Codec{
		Specdata3Schema,
		NFSTime3Schema,
		FileHandle3Schema,
		Fattr3Schema,
		DiropArgs3Schema,
		GetAttr3ArgsSchema,
		GetAttr3ResOkSchema,
		GetAttr3ResSchema,
		Lookup3ArgsSchema,
		Lookup3ResOkSchema,
		Lookup3ResFailSchema,
		Lookup3ResSchema,
		Access3ArgsSchema,
		Access3ResOkSchema,
		Access3ResFailSchema,
		Access3ResSchema,
		FsInfo3ArgsSchema,
		FsInfo3ResOkSchema,
		FsInfo3ResFailSchema,
		FsInfo3ResSchema,
		PathConf3ArgsSchema,
		PathConf3ResOkSchema,
		PathConf3ResFailSchema,
		PathConf3ResSchema,
	} {
		xdr.MustRegister(c)
	}
}

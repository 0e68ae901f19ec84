package proto

import (
	"reflect"
	"strings"

	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/runtime/protoimpl"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	FileName    = "blockdrop/engine.proto"
	PackageName = "blockdrop"
)

// File_blockdrop_engine_proto describes every message and the Engine
// service. It is registered in protoregistry.GlobalFiles.
var File_blockdrop_engine_proto protoreflect.FileDescriptor

var (
	optional = descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	repeated = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
)

func field(name string, number int32, label descriptorpb.FieldDescriptorProto_Label, typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
	f := &descriptorpb.FieldDescriptorProto{
		Name:     protobuf.String(name),
		Number:   protobuf.Int32(number),
		Label:    label.Enum(),
		Type:     typ.Enum(),
		JsonName: protobuf.String(jsonName(name)),
	}
	if typeName != "" {
		f.TypeName = protobuf.String(typeName)
	}
	return f
}

// jsonName is the lowerCamelCase name protoc derives from a field name.
func jsonName(name string) string {
	parts := strings.Split(name, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: protobuf.String(name), Field: fields}
}

func method(name, in, out string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       protobuf.String(name),
		InputType:  protobuf.String(in),
		OutputType: protobuf.String(out),
	}
}

// EngineFileDescriptor returns blockdrop/engine.proto:
//
//	message NewSessionRequest { int32 width = 1; int32 height = 2; uint64 seed = 3; string generator = 4; int32 preview = 5; }
//	message PlaceRequest { string session_id = 1; int32 column = 2; string rotation = 3; }
//	message SessionRequest { string session_id = 1; }
//	message Row { repeated string cells = 1; }
//	message Placement { string shape = 1; string rotation = 2; int32 column = 3; int32 row = 4; int32 cleared = 5; }
//	message Snapshot {
//	  string session_id = 1; int32 width = 2; int32 height = 3; repeated Row rows = 4;
//	  string current = 5; repeated string preview = 6; bool is_game_over = 7;
//	  int32 placed = 8; int32 lines_clear = 9; Placement last = 10;
//	}
//	service Engine {
//	  rpc NewSession(NewSessionRequest) returns (Snapshot);
//	  rpc Place(PlaceRequest) returns (Snapshot);
//	  rpc Get(SessionRequest) returns (Snapshot);
//	  rpc Close(SessionRequest) returns (google.protobuf.Empty);
//	}
func EngineFileDescriptor() *descriptorpb.FileDescriptorProto {
	const (
		i32 = descriptorpb.FieldDescriptorProto_TYPE_INT32
		u64 = descriptorpb.FieldDescriptorProto_TYPE_UINT64
		str = descriptorpb.FieldDescriptorProto_TYPE_STRING
		bln = descriptorpb.FieldDescriptorProto_TYPE_BOOL
		msg = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
	)
	ref := func(name string) string { return "." + PackageName + "." + name }

	return &descriptorpb.FileDescriptorProto{
		Name:       protobuf.String(FileName),
		Package:    protobuf.String(PackageName),
		Dependency: []string{"google/protobuf/empty.proto"},
		MessageType: []*descriptorpb.DescriptorProto{
			message("NewSessionRequest",
				field("width", 1, optional, i32, ""),
				field("height", 2, optional, i32, ""),
				field("seed", 3, optional, u64, ""),
				field("generator", 4, optional, str, ""),
				field("preview", 5, optional, i32, ""),
			),
			message("PlaceRequest",
				field("session_id", 1, optional, str, ""),
				field("column", 2, optional, i32, ""),
				field("rotation", 3, optional, str, ""),
			),
			message("SessionRequest",
				field("session_id", 1, optional, str, ""),
			),
			message("Row",
				field("cells", 1, repeated, str, ""),
			),
			message("Placement",
				field("shape", 1, optional, str, ""),
				field("rotation", 2, optional, str, ""),
				field("column", 3, optional, i32, ""),
				field("row", 4, optional, i32, ""),
				field("cleared", 5, optional, i32, ""),
			),
			message("Snapshot",
				field("session_id", 1, optional, str, ""),
				field("width", 2, optional, i32, ""),
				field("height", 3, optional, i32, ""),
				field("rows", 4, repeated, msg, ref("Row")),
				field("current", 5, optional, str, ""),
				field("preview", 6, repeated, str, ""),
				field("is_game_over", 7, optional, bln, ""),
				field("placed", 8, optional, i32, ""),
				field("lines_clear", 9, optional, i32, ""),
				field("last", 10, optional, msg, ref("Placement")),
			),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: protobuf.String("Engine"),
			Method: []*descriptorpb.MethodDescriptorProto{
				method("NewSession", ref("NewSessionRequest"), ref("Snapshot")),
				method("Place", ref("PlaceRequest"), ref("Snapshot")),
				method("Get", ref("SessionRequest"), ref("Snapshot")),
				method("Close", ref("SessionRequest"), ".google.protobuf.Empty"),
			},
		}},
		Options: &descriptorpb.FileOptions{GoPackage: protobuf.String("blockdrop/proto")},
		Syntax:  protobuf.String("proto3"),
	}
}

var file_blockdrop_engine_proto_rawDesc = func() []byte {
	b, err := protobuf.MarshalOptions{Deterministic: true}.Marshal(EngineFileDescriptor())
	if err != nil {
		panic(err)
	}
	return b
}()

var file_blockdrop_engine_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_blockdrop_engine_proto_goTypes = []any{
	(*NewSessionRequest)(nil), // 0: blockdrop.NewSessionRequest
	(*PlaceRequest)(nil),      // 1: blockdrop.PlaceRequest
	(*SessionRequest)(nil),    // 2: blockdrop.SessionRequest
	(*Row)(nil),               // 3: blockdrop.Row
	(*Placement)(nil),         // 4: blockdrop.Placement
	(*Snapshot)(nil),          // 5: blockdrop.Snapshot
	(*emptypb.Empty)(nil),     // 6: google.protobuf.Empty
}
var file_blockdrop_engine_proto_depIdxs = []int32{
	3, // 0: blockdrop.Snapshot.rows:type_name -> blockdrop.Row
	4, // 1: blockdrop.Snapshot.last:type_name -> blockdrop.Placement
	0, // 2: blockdrop.Engine.NewSession:input_type -> blockdrop.NewSessionRequest
	1, // 3: blockdrop.Engine.Place:input_type -> blockdrop.PlaceRequest
	2, // 4: blockdrop.Engine.Get:input_type -> blockdrop.SessionRequest
	2, // 5: blockdrop.Engine.Close:input_type -> blockdrop.SessionRequest
	5, // 6: blockdrop.Engine.NewSession:output_type -> blockdrop.Snapshot
	5, // 7: blockdrop.Engine.Place:output_type -> blockdrop.Snapshot
	5, // 8: blockdrop.Engine.Get:output_type -> blockdrop.Snapshot
	6, // 9: blockdrop.Engine.Close:output_type -> google.protobuf.Empty
	6, // [6:10] is the sub-list for method output_type
	2, // [2:6] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_blockdrop_engine_proto_init() }
func file_blockdrop_engine_proto_init() {
	if File_blockdrop_engine_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_blockdrop_engine_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_blockdrop_engine_proto_goTypes,
		DependencyIndexes: file_blockdrop_engine_proto_depIdxs,
		MessageInfos:      file_blockdrop_engine_proto_msgTypes,
	}.Build()
	File_blockdrop_engine_proto = out.File
	file_blockdrop_engine_proto_goTypes = nil
	file_blockdrop_engine_proto_depIdxs = nil
}

// Copyright (C) 2019-2022 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package avm

// This file is the single source of truth for opcode byte assignment. Byte
// values match the published AVM opcode table; a byte with no register() call
// here is simply unassigned and dispatches InvalidOpcode.
//
// Every opcode gets exactly one OpSpec regardless of how many TEAL versions
// it has existed across. The upstream interpreter this was grounded on keeps
// one OpSpec per (opcode, version) pair so cost and mode can change across
// versions (sha256 cost 7 before v2, 35 from v2 on; ed25519verify Signature
// mode only before v5). That is more history than this interpreter tracks:
// each opcode here has the cost and mode its most recent version defines.
func init() {
	u, b, any := StackUint64, StackBytes, StackAny

	register(OpSpec{Opcode: 0x00, Name: "err", MinVersion: 1, Cost: 1, Modes: modeAny, Imm: ImmNone, run: opErr})

	// Arithmetic and logic.
	register(OpSpec{Opcode: 0x08, Name: "+", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opPlus})
	register(OpSpec{Opcode: 0x09, Name: "-", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opMinus})
	register(OpSpec{Opcode: 0x0a, Name: "/", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opDiv})
	register(OpSpec{Opcode: 0x0b, Name: "*", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opMul})
	register(OpSpec{Opcode: 0x0c, Name: "<", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opLt})
	register(OpSpec{Opcode: 0x0d, Name: ">", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opGt})
	register(OpSpec{Opcode: 0x0e, Name: "<=", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opLe})
	register(OpSpec{Opcode: 0x0f, Name: ">=", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opGe})
	register(OpSpec{Opcode: 0x10, Name: "&&", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opAnd})
	register(OpSpec{Opcode: 0x11, Name: "||", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opOr})
	register(OpSpec{Opcode: 0x12, Name: "==", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{any, any}, Pushes: []StackType{u}, Imm: ImmNone, run: opEq})
	register(OpSpec{Opcode: 0x13, Name: "!=", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{any, any}, Pushes: []StackType{u}, Imm: ImmNone, run: opNeq})
	register(OpSpec{Opcode: 0x14, Name: "!", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Pushes: []StackType{u}, Imm: ImmNone, run: opNot})
	register(OpSpec{Opcode: 0x15, Name: "len", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{b}, Pushes: []StackType{u}, Imm: ImmNone, run: opLen})
	register(OpSpec{Opcode: 0x16, Name: "itob", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Pushes: []StackType{b}, Imm: ImmNone, run: opItob})
	register(OpSpec{Opcode: 0x17, Name: "btoi", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{b}, Pushes: []StackType{u}, Imm: ImmNone, run: opBtoi})
	register(OpSpec{Opcode: 0x18, Name: "%", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opModulo})
	register(OpSpec{Opcode: 0x19, Name: "|", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opBitOr})
	register(OpSpec{Opcode: 0x1a, Name: "&", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opBitAnd})
	register(OpSpec{Opcode: 0x1b, Name: "^", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opBitXor})
	register(OpSpec{Opcode: 0x1c, Name: "~", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Pushes: []StackType{u}, Imm: ImmNone, run: opBitNot})
	register(OpSpec{Opcode: 0x1d, Name: "mulw", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u, u}, Imm: ImmNone, run: opMulw})
	register(OpSpec{Opcode: 0x1e, Name: "addw", MinVersion: 2, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{u, u}, Imm: ImmNone, run: opAddw})
	register(OpSpec{Opcode: 0x1f, Name: "divmodw", MinVersion: 4, Cost: 20, Modes: modeAny, Pops: []StackType{u, u, u, u}, Pushes: []StackType{u, u, u, u}, Imm: ImmNone, run: opDivModw})

	// Constant pools.
	register(OpSpec{Opcode: 0x20, Name: "intcblock", MinVersion: 1, Cost: 1, Modes: modeAny, Imm: ImmIntBlock, run: opIntCBlock})
	register(OpSpec{Opcode: 0x21, Name: "intc", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{u}, Imm: ImmByte, run: opIntC})
	register(OpSpec{Opcode: 0x22, Name: "intc_0", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{u}, Imm: ImmNone, run: intcOp(0)})
	register(OpSpec{Opcode: 0x23, Name: "intc_1", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{u}, Imm: ImmNone, run: intcOp(1)})
	register(OpSpec{Opcode: 0x24, Name: "intc_2", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{u}, Imm: ImmNone, run: intcOp(2)})
	register(OpSpec{Opcode: 0x25, Name: "intc_3", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{u}, Imm: ImmNone, run: intcOp(3)})
	register(OpSpec{Opcode: 0x26, Name: "bytecblock", MinVersion: 1, Cost: 1, Modes: modeAny, Imm: ImmByteBlock, run: opByteCBlock})
	register(OpSpec{Opcode: 0x27, Name: "bytec", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{b}, Imm: ImmByte, run: opByteC})
	register(OpSpec{Opcode: 0x28, Name: "bytec_0", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{b}, Imm: ImmNone, run: bytecOp(0)})
	register(OpSpec{Opcode: 0x29, Name: "bytec_1", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{b}, Imm: ImmNone, run: bytecOp(1)})
	register(OpSpec{Opcode: 0x2a, Name: "bytec_2", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{b}, Imm: ImmNone, run: bytecOp(2)})
	register(OpSpec{Opcode: 0x2b, Name: "bytec_3", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{b}, Imm: ImmNone, run: bytecOp(3)})

	// LogicSig call arguments.
	register(OpSpec{Opcode: 0x2c, Name: "arg", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{b}, Imm: ImmByte, run: opArg})
	register(OpSpec{Opcode: 0x2d, Name: "arg_0", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{b}, Imm: ImmNone, run: argOp(0)})
	register(OpSpec{Opcode: 0x2e, Name: "arg_1", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{b}, Imm: ImmNone, run: argOp(1)})
	register(OpSpec{Opcode: 0x2f, Name: "arg_2", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{b}, Imm: ImmNone, run: argOp(2)})
	register(OpSpec{Opcode: 0x30, Name: "arg_3", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{b}, Imm: ImmNone, run: argOp(3)})

	// Transaction and global field access.
	register(OpSpec{Opcode: 0x31, Name: "txn", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{any}, Imm: ImmByte, run: opTxn})
	register(OpSpec{Opcode: 0x32, Name: "global", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{any}, Imm: ImmByte, run: opGlobal})
	register(OpSpec{Opcode: 0x33, Name: "gtxn", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{any}, Imm: ImmByte2, run: opGtxn})
	register(OpSpec{Opcode: 0x34, Name: "load", MinVersion: 1, Cost: 1, Modes: modeAny, Pushes: []StackType{any}, Imm: ImmByte, run: opLoad})
	register(OpSpec{Opcode: 0x35, Name: "store", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{any}, Imm: ImmByte, run: opStore})
	register(OpSpec{Opcode: 0x36, Name: "txna", MinVersion: 2, Cost: 1, Modes: modeAny, Pushes: []StackType{any}, Imm: ImmByte2, run: opTxna})
	register(OpSpec{Opcode: 0x37, Name: "gtxna", MinVersion: 2, Cost: 1, Modes: modeAny, Pushes: []StackType{any}, Imm: ImmThreeBytes, run: opGtxna})
	register(OpSpec{Opcode: 0x38, Name: "gtxns", MinVersion: 3, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Pushes: []StackType{any}, Imm: ImmByte, run: opGtxns})
	register(OpSpec{Opcode: 0x39, Name: "gtxnsa", MinVersion: 3, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Pushes: []StackType{any}, Imm: ImmByte2, run: opGtxnsa})
	register(OpSpec{Opcode: 0x3a, Name: "gload", MinVersion: 4, Cost: 1, Modes: ModeApplication, Pushes: []StackType{any}, Imm: ImmByte2, run: opGload})
	register(OpSpec{Opcode: 0x3b, Name: "gloads", MinVersion: 4, Cost: 1, Modes: ModeApplication, Pops: []StackType{u}, Pushes: []StackType{any}, Imm: ImmByte, run: opGloads})
	register(OpSpec{Opcode: 0x3c, Name: "gaid", MinVersion: 4, Cost: 1, Modes: ModeApplication, Pushes: []StackType{u}, Imm: ImmByte, run: opGaid})
	register(OpSpec{Opcode: 0x3d, Name: "gaids", MinVersion: 4, Cost: 1, Modes: ModeApplication, Pops: []StackType{u}, Pushes: []StackType{u}, Imm: ImmNone, run: opGaids})
	register(OpSpec{Opcode: 0x3e, Name: "loads", MinVersion: 5, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Pushes: []StackType{any}, Imm: ImmNone, run: opLoads})
	register(OpSpec{Opcode: 0x3f, Name: "stores", MinVersion: 5, Cost: 1, Modes: modeAny, Pops: []StackType{u, any}, Imm: ImmNone, run: opStores})

	// Flow control.
	register(OpSpec{Opcode: 0x40, Name: "bnz", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Imm: ImmLabel, run: opBnz})
	register(OpSpec{Opcode: 0x41, Name: "bz", MinVersion: 2, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Imm: ImmLabel, run: opBz})
	register(OpSpec{Opcode: 0x42, Name: "b", MinVersion: 2, Cost: 1, Modes: modeAny, Imm: ImmLabel, run: opB})
	register(OpSpec{Opcode: 0x43, Name: "return", MinVersion: 2, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Imm: ImmNone, run: opReturn})
	register(OpSpec{Opcode: 0x44, Name: "assert", MinVersion: 3, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Imm: ImmNone, run: opAssert})

	// Stack manipulation.
	register(OpSpec{Opcode: 0x45, Name: "bury", MinVersion: 8, Cost: 1, Modes: modeAny, Pops: []StackType{any}, Imm: ImmByte, run: opBury})
	register(OpSpec{Opcode: 0x46, Name: "popn", MinVersion: 8, Cost: 1, Modes: modeAny, Imm: ImmByte, run: opPopN})
	register(OpSpec{Opcode: 0x47, Name: "dupn", MinVersion: 8, Cost: 1, Modes: modeAny, Pops: []StackType{any}, Imm: ImmByte, run: opDupN})
	register(OpSpec{Opcode: 0x48, Name: "pop", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{any}, Imm: ImmNone, run: opPop})
	register(OpSpec{Opcode: 0x49, Name: "dup", MinVersion: 1, Cost: 1, Modes: modeAny, Pops: []StackType{any}, Imm: ImmNone, run: opDup})
	register(OpSpec{Opcode: 0x4a, Name: "dup2", MinVersion: 2, Cost: 1, Modes: modeAny, Pops: []StackType{any, any}, Imm: ImmNone, run: opDup2})
	register(OpSpec{Opcode: 0x4b, Name: "dig", MinVersion: 3, Cost: 1, Modes: modeAny, Imm: ImmByte, run: opDig})
	register(OpSpec{Opcode: 0x4c, Name: "swap", MinVersion: 3, Cost: 1, Modes: modeAny, Pops: []StackType{any, any}, Imm: ImmNone, run: opSwap})
	register(OpSpec{Opcode: 0x4d, Name: "select", MinVersion: 3, Cost: 1, Modes: modeAny, Pops: []StackType{any, any, u}, Imm: ImmNone, run: opSelect})
	register(OpSpec{Opcode: 0x4e, Name: "cover", MinVersion: 5, Cost: 1, Modes: modeAny, Imm: ImmByte, run: opCover})
	register(OpSpec{Opcode: 0x4f, Name: "uncover", MinVersion: 5, Cost: 1, Modes: modeAny, Imm: ImmByte, run: opUncover})

	// Byte string manipulation.
	register(OpSpec{Opcode: 0x50, Name: "concat", MinVersion: 2, Cost: 1, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{b}, Imm: ImmNone, run: opConcat})
	register(OpSpec{Opcode: 0x53, Name: "getbit", MinVersion: 3, Cost: 1, Modes: modeAny, Pops: []StackType{any, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opGetBit})
	register(OpSpec{Opcode: 0x54, Name: "setbit", MinVersion: 3, Cost: 1, Modes: modeAny, Pops: []StackType{any, u, u}, Pushes: []StackType{any}, Imm: ImmNone, run: opSetBit})
	register(OpSpec{Opcode: 0x55, Name: "getbyte", MinVersion: 3, Cost: 1, Modes: modeAny, Pops: []StackType{b, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opGetByte})
	register(OpSpec{Opcode: 0x56, Name: "setbyte", MinVersion: 3, Cost: 1, Modes: modeAny, Pops: []StackType{b, u, u}, Pushes: []StackType{b}, Imm: ImmNone, run: opSetByte})
	register(OpSpec{Opcode: 0x57, Name: "extract", MinVersion: 5, Cost: 1, Modes: modeAny, Pops: []StackType{b}, Pushes: []StackType{b}, Imm: ImmByte2, run: opExtract})
	register(OpSpec{Opcode: 0x58, Name: "extract3", MinVersion: 5, Cost: 1, Modes: modeAny, Pops: []StackType{b, u, u}, Pushes: []StackType{b}, Imm: ImmNone, run: opExtract3})
	register(OpSpec{Opcode: 0x59, Name: "extract_uint16", MinVersion: 5, Cost: 1, Modes: modeAny, Pops: []StackType{b, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opExtractUint16})
	register(OpSpec{Opcode: 0x5a, Name: "extract_uint32", MinVersion: 5, Cost: 1, Modes: modeAny, Pops: []StackType{b, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opExtractUint32})
	register(OpSpec{Opcode: 0x5b, Name: "extract_uint64", MinVersion: 5, Cost: 1, Modes: modeAny, Pops: []StackType{b, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opExtractUint64})
	register(OpSpec{Opcode: 0x5c, Name: "replace2", MinVersion: 7, Cost: 1, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{b}, Imm: ImmByte, run: opReplace2})
	register(OpSpec{Opcode: 0x5d, Name: "replace3", MinVersion: 7, Cost: 1, Modes: modeAny, Pops: []StackType{b, u, b}, Pushes: []StackType{b}, Imm: ImmNone, run: opReplace3})

	// Application and asset state.
	register(OpSpec{Opcode: 0x60, Name: "balance", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{u}, Pushes: []StackType{u}, Imm: ImmNone, run: opBalance})
	register(OpSpec{Opcode: 0x61, Name: "app_opted_in", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{u, u}, Pushes: []StackType{u}, Imm: ImmNone, run: opAppOptedIn})
	register(OpSpec{Opcode: 0x62, Name: "app_local_get", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{u, b}, Pushes: []StackType{any}, Imm: ImmNone, run: opAppLocalGet})
	register(OpSpec{Opcode: 0x63, Name: "app_local_get_ex", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{u, u, b}, Pushes: []StackType{any, u}, Imm: ImmNone, run: opAppLocalGetEx})
	register(OpSpec{Opcode: 0x64, Name: "app_global_get", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{b}, Pushes: []StackType{any}, Imm: ImmNone, run: opAppGlobalGet})
	register(OpSpec{Opcode: 0x65, Name: "app_global_get_ex", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{u, b}, Pushes: []StackType{any, u}, Imm: ImmNone, run: opAppGlobalGetEx})
	register(OpSpec{Opcode: 0x66, Name: "app_local_put", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{u, b, any}, Imm: ImmNone, run: opAppLocalPut})
	register(OpSpec{Opcode: 0x67, Name: "app_global_put", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{b, any}, Imm: ImmNone, run: opAppGlobalPut})
	register(OpSpec{Opcode: 0x68, Name: "app_local_del", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{u, b}, Imm: ImmNone, run: opAppLocalDel})
	register(OpSpec{Opcode: 0x69, Name: "app_global_del", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{b}, Imm: ImmNone, run: opAppGlobalDel})
	register(OpSpec{Opcode: 0x70, Name: "asset_holding_get", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{u, u}, Pushes: []StackType{any, u}, Imm: ImmByte, run: opAssetHoldingGet})
	register(OpSpec{Opcode: 0x71, Name: "asset_params_get", MinVersion: 2, Cost: 1, Modes: ModeApplication, Pops: []StackType{u}, Pushes: []StackType{any, u}, Imm: ImmByte, run: opAssetParamsGet})
	register(OpSpec{Opcode: 0x72, Name: "app_params_get", MinVersion: 5, Cost: 1, Modes: ModeApplication, Pops: []StackType{u}, Pushes: []StackType{any, u}, Imm: ImmByte, run: opAppParamsGet})
	register(OpSpec{Opcode: 0x78, Name: "min_balance", MinVersion: 3, Cost: 1, Modes: ModeApplication, Pops: []StackType{u}, Pushes: []StackType{u}, Imm: ImmNone, run: opMinBalance})

	// Pushed literals.
	register(OpSpec{Opcode: 0x80, Name: "pushbytes", MinVersion: 3, Cost: 1, Modes: modeAny, Pushes: []StackType{b}, Imm: ImmBytes, run: opPushBytes})
	register(OpSpec{Opcode: 0x81, Name: "pushint", MinVersion: 3, Cost: 1, Modes: modeAny, Pushes: []StackType{u}, Imm: ImmUint, run: opPushInt})

	// Crypto.
	register(OpSpec{Opcode: 0x01, Name: "sha256", MinVersion: 1, Cost: 35, Modes: modeAny, Pops: []StackType{b}, Pushes: []StackType{b}, Imm: ImmNone, run: hashOp(hashSHA256)})
	register(OpSpec{Opcode: 0x02, Name: "keccak256", MinVersion: 1, Cost: 130, Modes: modeAny, Pops: []StackType{b}, Pushes: []StackType{b}, Imm: ImmNone, run: hashOp(hashKeccak256)})
	register(OpSpec{Opcode: 0x03, Name: "sha512_256", MinVersion: 1, Cost: 45, Modes: modeAny, Pops: []StackType{b}, Pushes: []StackType{b}, Imm: ImmNone, run: hashOp(hashSHA512_256)})
	register(OpSpec{Opcode: 0x04, Name: "ed25519verify", MinVersion: 1, Cost: 1900, Modes: modeAny, Pops: []StackType{b, b, b}, Pushes: []StackType{u}, Imm: ImmNone, run: opEd25519Verify})
	register(OpSpec{Opcode: 0x05, Name: "ecdsa_verify", MinVersion: 5, Cost: 1700, Modes: modeAny, Pops: []StackType{b, b, b, b, b}, Pushes: []StackType{u}, Imm: ImmByte, run: opEcdsaVerify})
	register(OpSpec{Opcode: 0x06, Name: "ecdsa_pk_decompress", MinVersion: 5, Cost: 650, Modes: modeAny, Pops: []StackType{b}, Pushes: []StackType{b, b}, Imm: ImmByte, run: opEcdsaPkDecompress})
	register(OpSpec{Opcode: 0x07, Name: "ecdsa_pk_recover", MinVersion: 5, Cost: 2000, Modes: modeAny, Pops: []StackType{b, u, b, b}, Pushes: []StackType{b, b}, Imm: ImmByte, run: opEcdsaPkRecover})
	register(OpSpec{Opcode: 0x98, Name: "sha3_256", MinVersion: 7, Cost: 45, Modes: modeAny, Pops: []StackType{b}, Pushes: []StackType{b}, Imm: ImmNone, run: hashOp(hashSHA3_256)})

	// Subroutines.
	register(OpSpec{Opcode: 0x88, Name: "callsub", MinVersion: 4, Cost: 1, Modes: modeAny, Imm: ImmLabel, run: opCallSub})
	register(OpSpec{Opcode: 0x89, Name: "retsub", MinVersion: 4, Cost: 1, Modes: modeAny, Imm: ImmNone, run: opRetSub})
	register(OpSpec{Opcode: 0x8a, Name: "proto", MinVersion: 8, Cost: 1, Modes: modeAny, Imm: ImmTwoBytes, run: opProto})
	register(OpSpec{Opcode: 0x8b, Name: "frame_dig", MinVersion: 8, Cost: 1, Modes: modeAny, Pushes: []StackType{any}, Imm: ImmSignedByte, run: opFrameDig})
	register(OpSpec{Opcode: 0x8c, Name: "frame_bury", MinVersion: 8, Cost: 1, Modes: modeAny, Pops: []StackType{any}, Imm: ImmSignedByte, run: opFrameBury})
	register(OpSpec{Opcode: 0x8d, Name: "switch", MinVersion: 8, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Imm: ImmSwitch, run: opSwitch})
	register(OpSpec{Opcode: 0x8e, Name: "match", MinVersion: 8, Cost: 1, Modes: modeAny, Imm: ImmSwitch, run: opMatch})

	// Byte-string big-integer math.
	register(OpSpec{Opcode: 0xa0, Name: "b+", MinVersion: 4, Cost: 10, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{b}, Imm: ImmNone, run: opBPlus})
	register(OpSpec{Opcode: 0xa1, Name: "b-", MinVersion: 4, Cost: 10, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{b}, Imm: ImmNone, run: opBMinus})
	register(OpSpec{Opcode: 0xa2, Name: "b/", MinVersion: 4, Cost: 20, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{b}, Imm: ImmNone, run: opBDiv})
	register(OpSpec{Opcode: 0xa3, Name: "b*", MinVersion: 4, Cost: 20, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{b}, Imm: ImmNone, run: opBMul})
	register(OpSpec{Opcode: 0xa4, Name: "b<", MinVersion: 4, Cost: 1, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{u}, Imm: ImmNone, run: opBLt})
	register(OpSpec{Opcode: 0xa5, Name: "b>", MinVersion: 4, Cost: 1, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{u}, Imm: ImmNone, run: opBGt})
	register(OpSpec{Opcode: 0xa6, Name: "b<=", MinVersion: 4, Cost: 1, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{u}, Imm: ImmNone, run: opBLe})
	register(OpSpec{Opcode: 0xa7, Name: "b>=", MinVersion: 4, Cost: 1, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{u}, Imm: ImmNone, run: opBGe})
	register(OpSpec{Opcode: 0xa8, Name: "b==", MinVersion: 4, Cost: 1, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{u}, Imm: ImmNone, run: opBEq})
	register(OpSpec{Opcode: 0xa9, Name: "b!=", MinVersion: 4, Cost: 1, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{u}, Imm: ImmNone, run: opBNe})
	register(OpSpec{Opcode: 0xaa, Name: "b%", MinVersion: 4, Cost: 20, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{b}, Imm: ImmNone, run: opBMod})
	register(OpSpec{Opcode: 0xab, Name: "b|", MinVersion: 4, Cost: 6, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{b}, Imm: ImmNone, run: opBOr})
	register(OpSpec{Opcode: 0xac, Name: "b&", MinVersion: 4, Cost: 6, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{b}, Imm: ImmNone, run: opBAnd})
	register(OpSpec{Opcode: 0xad, Name: "b^", MinVersion: 4, Cost: 6, Modes: modeAny, Pops: []StackType{b, b}, Pushes: []StackType{b}, Imm: ImmNone, run: opBXor})
	register(OpSpec{Opcode: 0xae, Name: "b~", MinVersion: 4, Cost: 4, Modes: modeAny, Pops: []StackType{b}, Pushes: []StackType{b}, Imm: ImmNone, run: opBNot})
	register(OpSpec{Opcode: 0xaf, Name: "bzero", MinVersion: 4, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Pushes: []StackType{b}, Imm: ImmNone, run: opBzero})

	register(OpSpec{Opcode: 0xb0, Name: "log", MinVersion: 5, Cost: 1, Modes: ModeApplication, Pops: []StackType{b}, Imm: ImmNone, run: opLog})

	register(OpSpec{Opcode: 0xc0, Name: "txnas", MinVersion: 5, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Pushes: []StackType{any}, Imm: ImmByte, run: opTxnas})
	register(OpSpec{Opcode: 0xc1, Name: "gtxnas", MinVersion: 5, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Pushes: []StackType{any}, Imm: ImmByte2, run: opGtxnas})
	register(OpSpec{Opcode: 0xc2, Name: "gtxnsas", MinVersion: 5, Cost: 1, Modes: modeAny, Pops: []StackType{u, u}, Pushes: []StackType{any}, Imm: ImmByte, run: opGtxnsas})
	register(OpSpec{Opcode: 0xc3, Name: "args", MinVersion: 5, Cost: 1, Modes: modeAny, Pops: []StackType{u}, Pushes: []StackType{b}, Imm: ImmNone, run: opArgs})
	register(OpSpec{Opcode: 0xc4, Name: "gloadss", MinVersion: 6, Cost: 1, Modes: ModeApplication, Pops: []StackType{u, u}, Pushes: []StackType{any}, Imm: ImmNone, run: opGloadss})
}

package utils

import "dex-cpi-sol/internal/types"

// PartitionOf 按地址选择 Kafka 分区，同一地址总是落在同一分区。
// 地址本身近似均匀分布，直接取其中 4 个字节，不做哈希。
func PartitionOf(key types.Pubkey, partitions uint32) int32 {
	if partitions <= 1 {
		return 0
	}
	// 不超过 256 的 2 的幂只看最后一个采样字节
	if partitions <= 256 && partitions&(partitions-1) == 0 {
		return int32(uint32(key[27]) & (partitions - 1))
	}
	sample := uint32(key[7])<<24 | uint32(key[15])<<16 | uint32(key[19])<<8 | uint32(key[27])
	return int32(sample % partitions)
}

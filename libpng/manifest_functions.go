package libpng

//go:generate go run ../tools/gen_manifest.go -strict ${LIBPNG_HEADER}

// libpngFunctions lists the libpng 1.6 exports resolved by the loader.
// APIs taking a FILE* (png_init_io, png_image_*_stdio) are not listed: a FILE*
// must not cross the C runtime boundary of a separately built libpng.
var libpngFunctions = Manifest{
	// Library information
	export("png_access_version_number", "png_uint_32 (void)"),
	export("png_get_copyright", "png_const_charp (png_const_structrp)"),
	export("png_get_header_ver", "png_const_charp (png_const_structrp)"),
	export("png_get_header_version", "png_const_charp (png_const_structrp)"),
	export("png_get_libpng_ver", "png_const_charp (png_const_structrp)"),
	export("png_permit_mng_features", "png_uint_32 (png_structrp, png_uint_32)"),
	export("png_set_option", "int (png_structrp, int, int)"),

	// Signature and struct management
	export("png_set_sig_bytes", "void (png_structrp, int)"),
	export("png_sig_cmp", "int (png_const_bytep, size_t, size_t)"),
	export("png_create_read_struct", "png_structp (png_const_charp, png_voidp, png_error_ptr, png_error_ptr)"),
	export("png_create_write_struct", "png_structp (png_const_charp, png_voidp, png_error_ptr, png_error_ptr)"),
	export("png_create_read_struct_2", "png_structp (png_const_charp, png_voidp, png_error_ptr, png_error_ptr, png_voidp, png_malloc_ptr, png_free_ptr)"),
	export("png_create_write_struct_2", "png_structp (png_const_charp, png_voidp, png_error_ptr, png_error_ptr, png_voidp, png_malloc_ptr, png_free_ptr)"),
	export("png_get_compression_buffer_size", "size_t (png_const_structrp)"),
	export("png_set_compression_buffer_size", "void (png_structrp, size_t)"),
	export("png_set_longjmp_fn", "jmp_buf * (png_structrp, png_longjmp_ptr, size_t)"),
	export("png_longjmp", "void (png_const_structrp, int)"),
	export("png_reset_zstream", "int (png_structrp)"),
	export("png_create_info_struct", "png_infop (png_const_structrp)"),
	export("png_info_init_3", "void (png_infopp, size_t)"),
	export("png_destroy_info_struct", "void (png_const_structrp, png_infopp)"),
	export("png_destroy_read_struct", "void (png_structpp, png_infopp, png_infopp)"),
	export("png_destroy_write_struct", "void (png_structpp, png_infopp)"),

	// Low level writing
	export("png_write_sig", "void (png_structrp)"),
	export("png_write_chunk", "void (png_structrp, png_const_bytep, png_const_bytep, size_t)"),
	export("png_write_chunk_start", "void (png_structrp, png_const_bytep, png_uint_32)"),
	export("png_write_chunk_data", "void (png_structrp, png_const_bytep, size_t)"),
	export("png_write_chunk_end", "void (png_structrp)"),
	export("png_write_info_before_PLTE", "void (png_structrp, png_const_inforp)"),
	export("png_write_info", "void (png_structrp, png_const_inforp)"),
	export("png_write_row", "void (png_structrp, png_const_bytep)"),
	export("png_write_rows", "void (png_structrp, png_bytepp, png_uint_32)"),
	export("png_write_image", "void (png_structrp, png_bytepp)"),
	export("png_write_end", "void (png_structrp, png_inforp)"),
	export("png_write_flush", "void (png_structrp)"),
	export("png_set_flush", "void (png_structrp, int)"),

	// Low level reading
	export("png_read_info", "void (png_structrp, png_inforp)"),
	export("png_start_read_image", "void (png_structrp)"),
	export("png_read_update_info", "void (png_structrp, png_inforp)"),
	export("png_read_rows", "void (png_structrp, png_bytepp, png_bytepp, png_uint_32)"),
	export("png_read_row", "void (png_structrp, png_bytep, png_bytep)"),
	export("png_read_image", "void (png_structrp, png_bytepp)"),
	export("png_read_end", "void (png_structrp, png_inforp)"),

	// High level read/write
	export("png_read_png", "void (png_structrp, png_inforp, int, png_voidp)"),
	export("png_write_png", "void (png_structrp, png_inforp, int, png_voidp)"),

	// Time conversion
	export("png_convert_to_rfc1123", "png_const_charp (png_structrp, png_const_timep)"),
	export("png_convert_to_rfc1123_buffer", "int (char *, png_const_timep)"),
	export("png_convert_from_struct_tm", "void (png_timep, const struct tm *)"),
	export("png_convert_from_time_t", "void (png_timep, time_t)"),

	// Transformations
	export("png_set_expand", "void (png_structrp)"),
	export("png_set_expand_gray_1_2_4_to_8", "void (png_structrp)"),
	export("png_set_palette_to_rgb", "void (png_structrp)"),
	export("png_set_tRNS_to_alpha", "void (png_structrp)"),
	export("png_set_expand_16", "void (png_structrp)"),
	export("png_set_bgr", "void (png_structrp)"),
	export("png_set_gray_to_rgb", "void (png_structrp)"),
	export("png_set_rgb_to_gray", "void (png_structrp, int, double, double)"),
	export("png_set_rgb_to_gray_fixed", "void (png_structrp, int, png_fixed_point, png_fixed_point)"),
	export("png_get_rgb_to_gray_status", "png_byte (png_const_structrp)"),
	export("png_build_grayscale_palette", "void (int, png_colorp)"),
	export("png_set_alpha_mode", "void (png_structrp, int, double)"),
	export("png_set_alpha_mode_fixed", "void (png_structrp, int, png_fixed_point)"),
	export("png_set_strip_alpha", "void (png_structrp)"),
	export("png_set_swap_alpha", "void (png_structrp)"),
	export("png_set_invert_alpha", "void (png_structrp)"),
	export("png_set_filler", "void (png_structrp, png_uint_32, int)"),
	export("png_set_add_alpha", "void (png_structrp, png_uint_32, int)"),
	export("png_set_swap", "void (png_structrp)"),
	export("png_set_packing", "void (png_structrp)"),
	export("png_set_packswap", "void (png_structrp)"),
	export("png_set_shift", "void (png_structrp, png_const_color_8p)"),
	export("png_set_interlace_handling", "int (png_structrp)"),
	export("png_set_invert_mono", "void (png_structrp)"),
	export("png_set_background", "void (png_structrp, png_const_color_16p, int, int, double)"),
	export("png_set_background_fixed", "void (png_structrp, png_const_color_16p, int, int, png_fixed_point)"),
	export("png_set_scale_16", "void (png_structrp)"),
	export("png_set_strip_16", "void (png_structrp)"),
	export("png_set_quantize", "void (png_structrp, png_colorp, int, int, png_const_uint_16p, int)"),
	export("png_set_gamma", "void (png_structrp, double, double)"),
	export("png_set_gamma_fixed", "void (png_structrp, png_fixed_point, png_fixed_point)"),
	export("png_set_crc_action", "void (png_structrp, int, int)"),

	// Compression
	export("png_set_filter", "void (png_structrp, int, int)"),
	export("png_set_filter_heuristics", "void (png_structrp, int, int, png_const_doublep, png_const_doublep)"),
	export("png_set_filter_heuristics_fixed", "void (png_structrp, int, int, png_const_fixed_point_p, png_const_fixed_point_p)"),
	export("png_set_compression_level", "void (png_structrp, int)"),
	export("png_set_compression_mem_level", "void (png_structrp, int)"),
	export("png_set_compression_strategy", "void (png_structrp, int)"),
	export("png_set_compression_window_bits", "void (png_structrp, int)"),
	export("png_set_compression_method", "void (png_structrp, int)"),
	export("png_set_text_compression_level", "void (png_structrp, int)"),
	export("png_set_text_compression_mem_level", "void (png_structrp, int)"),
	export("png_set_text_compression_strategy", "void (png_structrp, int)"),
	export("png_set_text_compression_window_bits", "void (png_structrp, int)"),
	export("png_set_text_compression_method", "void (png_structrp, int)"),

	// Callbacks and I/O
	export("png_set_error_fn", "void (png_structrp, png_voidp, png_error_ptr, png_error_ptr)"),
	export("png_get_error_ptr", "png_voidp (png_const_structrp)"),
	export("png_set_write_fn", "void (png_structrp, png_voidp, png_rw_ptr, png_flush_ptr)"),
	export("png_set_read_fn", "void (png_structrp, png_voidp, png_rw_ptr)"),
	export("png_get_io_ptr", "png_voidp (png_const_structrp)"),
	export("png_set_read_status_fn", "void (png_structrp, png_read_status_ptr)"),
	export("png_set_write_status_fn", "void (png_structrp, png_write_status_ptr)"),
	export("png_set_mem_fn", "void (png_structrp, png_voidp, png_malloc_ptr, png_free_ptr)"),
	export("png_get_mem_ptr", "png_voidp (png_const_structrp)"),
	export("png_set_read_user_transform_fn", "void (png_structrp, png_user_transform_ptr)"),
	export("png_set_write_user_transform_fn", "void (png_structrp, png_user_transform_ptr)"),
	export("png_set_user_transform_info", "void (png_structrp, png_voidp, int, int)"),
	export("png_get_user_transform_ptr", "png_voidp (png_const_structrp)"),
	export("png_get_current_row_number", "png_uint_32 (png_const_structrp)"),
	export("png_get_current_pass_number", "png_byte (png_const_structrp)"),
	export("png_set_read_user_chunk_fn", "void (png_structrp, png_voidp, png_user_chunk_ptr)"),
	export("png_get_user_chunk_ptr", "png_voidp (png_const_structrp)"),
	export("png_get_io_state", "png_uint_32 (png_const_structrp)"),
	export("png_get_io_chunk_type", "png_uint_32 (png_const_structrp)"),

	// Progressive reader
	export("png_set_progressive_read_fn", "void (png_structrp, png_voidp, png_progressive_info_ptr, png_progressive_row_ptr, png_progressive_end_ptr)"),
	export("png_get_progressive_ptr", "png_voidp (png_const_structrp)"),
	export("png_process_data", "void (png_structrp, png_inforp, png_bytep, size_t)"),
	export("png_process_data_pause", "size_t (png_structrp, int)"),
	export("png_process_data_skip", "png_uint_32 (png_structrp)"),
	export("png_progressive_combine_row", "void (png_const_structrp, png_bytep, png_const_bytep)"),

	// Memory
	export("png_malloc", "png_voidp (png_const_structrp, png_alloc_size_t)"),
	export("png_calloc", "png_voidp (png_const_structrp, png_alloc_size_t)"),
	export("png_malloc_warn", "png_voidp (png_const_structrp, png_alloc_size_t)"),
	export("png_malloc_default", "png_voidp (png_const_structrp, png_alloc_size_t)"),
	export("png_free", "void (png_const_structrp, png_voidp)"),
	export("png_free_default", "void (png_const_structrp, png_voidp)"),
	export("png_free_data", "void (png_const_structrp, png_inforp, png_uint_32, int)"),
	export("png_data_freer", "void (png_const_structrp, png_inforp, int, png_uint_32)"),

	// Errors and warnings
	export("png_error", "void (png_const_structrp, png_const_charp)"),
	export("png_chunk_error", "void (png_const_structrp, png_const_charp)"),
	export("png_err", "void (png_const_structrp)"),
	export("png_warning", "void (png_const_structrp, png_const_charp)"),
	export("png_chunk_warning", "void (png_const_structrp, png_const_charp)"),
	export("png_benign_error", "void (png_const_structrp, png_const_charp)"),
	export("png_chunk_benign_error", "void (png_const_structrp, png_const_charp)"),
	export("png_set_benign_errors", "void (png_structrp, int)"),
	export("png_set_strip_error_numbers", "void (png_structrp, png_uint_32)"),
	export("png_set_check_for_invalid_index", "void (png_structrp, int)"),
	export("png_get_palette_max", "int (png_const_structp, png_const_infop)"),

	// Limits
	export("png_set_user_limits", "void (png_structrp, png_uint_32, png_uint_32)"),
	export("png_get_user_width_max", "png_uint_32 (png_const_structrp)"),
	export("png_get_user_height_max", "png_uint_32 (png_const_structrp)"),
	export("png_set_chunk_cache_max", "void (png_structrp, png_uint_32)"),
	export("png_get_chunk_cache_max", "png_uint_32 (png_const_structrp)"),
	export("png_set_chunk_malloc_max", "void (png_structrp, png_alloc_size_t)"),
	export("png_get_chunk_malloc_max", "png_alloc_size_t (png_const_structrp)"),

	// Info accessors
	export("png_get_valid", "png_uint_32 (png_const_structrp, png_const_inforp, png_uint_32)"),
	export("png_get_rowbytes", "size_t (png_const_structrp, png_const_inforp)"),
	export("png_get_rows", "png_bytepp (png_const_structrp, png_const_inforp)"),
	export("png_set_rows", "void (png_const_structrp, png_inforp, png_bytepp)"),
	export("png_get_channels", "png_byte (png_const_structrp, png_const_inforp)"),
	export("png_get_image_width", "png_uint_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_image_height", "png_uint_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_bit_depth", "png_byte (png_const_structrp, png_const_inforp)"),
	export("png_get_color_type", "png_byte (png_const_structrp, png_const_inforp)"),
	export("png_get_filter_type", "png_byte (png_const_structrp, png_const_inforp)"),
	export("png_get_interlace_type", "png_byte (png_const_structrp, png_const_inforp)"),
	export("png_get_compression_type", "png_byte (png_const_structrp, png_const_inforp)"),
	export("png_get_pixels_per_meter", "png_uint_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_x_pixels_per_meter", "png_uint_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_y_pixels_per_meter", "png_uint_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_pixel_aspect_ratio", "float (png_const_structrp, png_const_inforp)"),
	export("png_get_pixel_aspect_ratio_fixed", "png_fixed_point (png_const_structrp, png_const_inforp)"),
	export("png_get_x_offset_pixels", "png_int_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_y_offset_pixels", "png_int_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_x_offset_microns", "png_int_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_y_offset_microns", "png_int_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_pixels_per_inch", "png_uint_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_x_pixels_per_inch", "png_uint_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_y_pixels_per_inch", "png_uint_32 (png_const_structrp, png_const_inforp)"),
	export("png_get_x_offset_inches", "float (png_const_structrp, png_const_inforp)"),
	export("png_get_y_offset_inches", "float (png_const_structrp, png_const_inforp)"),
	export("png_get_x_offset_inches_fixed", "png_fixed_point (png_const_structrp, png_const_inforp)"),
	export("png_get_y_offset_inches_fixed", "png_fixed_point (png_const_structrp, png_const_inforp)"),
	export("png_get_pHYs_dpi", "png_uint_32 (png_const_structrp, png_const_inforp, png_uint_32 *, png_uint_32 *, int *)"),
	export("png_get_signature", "png_const_bytep (png_const_structrp, png_const_inforp)"),
	export("png_set_invalid", "void (png_const_structrp, png_inforp, int)"),

	// Chunks
	export("png_get_bKGD", "png_uint_32 (png_const_structrp, png_inforp, png_color_16p *)"),
	export("png_set_bKGD", "void (png_const_structrp, png_inforp, png_const_color_16p)"),
	export("png_get_cHRM", "png_uint_32 (png_const_structrp, png_const_inforp, double *, double *, double *, double *, double *, double *, double *, double *)"),
	export("png_get_cHRM_XYZ", "png_uint_32 (png_const_structrp, png_const_inforp, double *, double *, double *, double *, double *, double *, double *, double *, double *)"),
	export("png_get_cHRM_fixed", "png_uint_32 (png_const_structrp, png_const_inforp, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *)"),
	export("png_get_cHRM_XYZ_fixed", "png_uint_32 (png_const_structrp, png_const_inforp, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *)"),
	export("png_set_cHRM", "void (png_const_structrp, png_inforp, double, double, double, double, double, double, double, double)"),
	export("png_set_cHRM_XYZ", "void (png_const_structrp, png_inforp, double, double, double, double, double, double, double, double, double)"),
	export("png_set_cHRM_fixed", "void (png_const_structrp, png_inforp, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point)"),
	export("png_set_cHRM_XYZ_fixed", "void (png_const_structrp, png_inforp, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point)"),
	export("png_get_cICP", "png_uint_32 (png_const_structrp, png_const_inforp, png_bytep, png_bytep, png_bytep, png_bytep)"),
	export("png_set_cICP", "void (png_const_structrp, png_inforp, png_byte, png_byte, png_byte, png_byte)"),
	export("png_get_cLLI", "png_uint_32 (png_const_structrp, png_const_inforp, double *, double *)"),
	export("png_get_cLLI_fixed", "png_uint_32 (png_const_structrp, png_const_inforp, png_uint_32 *, png_uint_32 *)"),
	export("png_set_cLLI", "void (png_const_structrp, png_inforp, double, double)"),
	export("png_set_cLLI_fixed", "void (png_const_structrp, png_inforp, png_uint_32, png_uint_32)"),
	export("png_get_eXIf", "png_uint_32 (png_const_structrp, png_inforp, png_bytep *)"),
	export("png_set_eXIf", "void (png_const_structrp, png_inforp, png_bytep)"),
	export("png_get_eXIf_1", "png_uint_32 (png_const_structrp, png_const_inforp, png_uint_32 *, png_bytep *)"),
	export("png_set_eXIf_1", "void (png_const_structrp, png_inforp, png_uint_32, png_bytep)"),
	export("png_get_gAMA", "png_uint_32 (png_const_structrp, png_const_inforp, double *)"),
	export("png_get_gAMA_fixed", "png_uint_32 (png_const_structrp, png_const_inforp, png_fixed_point *)"),
	export("png_set_gAMA", "void (png_const_structrp, png_inforp, double)"),
	export("png_set_gAMA_fixed", "void (png_const_structrp, png_inforp, png_fixed_point)"),
	export("png_get_hIST", "png_uint_32 (png_const_structrp, png_inforp, png_uint_16p *)"),
	export("png_set_hIST", "void (png_const_structrp, png_inforp, png_const_uint_16p)"),
	export("png_get_IHDR", "png_uint_32 (png_const_structrp, png_const_inforp, png_uint_32 *, png_uint_32 *, int *, int *, int *, int *, int *)"),
	export("png_set_IHDR", "void (png_const_structrp, png_inforp, png_uint_32, png_uint_32, int, int, int, int, int)"),
	export("png_get_mDCV", "png_uint_32 (png_const_structrp, png_const_inforp, double *, double *, double *, double *, double *, double *, double *, double *, double *, double *)"),
	export("png_get_mDCV_fixed", "png_uint_32 (png_const_structrp, png_const_inforp, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_fixed_point *, png_uint_32 *, png_uint_32 *)"),
	export("png_set_mDCV", "void (png_const_structrp, png_inforp, double, double, double, double, double, double, double, double, double, double)"),
	export("png_set_mDCV_fixed", "void (png_const_structrp, png_inforp, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_fixed_point, png_uint_32, png_uint_32)"),
	export("png_get_oFFs", "png_uint_32 (png_const_structrp, png_const_inforp, png_int_32 *, png_int_32 *, int *)"),
	export("png_set_oFFs", "void (png_const_structrp, png_inforp, png_int_32, png_int_32, int)"),
	export("png_get_pCAL", "png_uint_32 (png_const_structrp, png_inforp, png_charp *, png_int_32 *, png_int_32 *, int *, int *, png_charp *, png_charpp *)"),
	export("png_set_pCAL", "void (png_const_structrp, png_inforp, png_const_charp, png_int_32, png_int_32, int, int, png_const_charp, png_charpp)"),
	export("png_get_pHYs", "png_uint_32 (png_const_structrp, png_const_inforp, png_uint_32 *, png_uint_32 *, int *)"),
	export("png_set_pHYs", "void (png_const_structrp, png_inforp, png_uint_32, png_uint_32, int)"),
	export("png_get_PLTE", "png_uint_32 (png_const_structrp, png_inforp, png_colorp *, int *)"),
	export("png_set_PLTE", "void (png_structrp, png_inforp, png_const_colorp, int)"),
	export("png_get_sBIT", "png_uint_32 (png_const_structrp, png_inforp, png_color_8p *)"),
	export("png_set_sBIT", "void (png_const_structrp, png_inforp, png_const_color_8p)"),
	export("png_get_sRGB", "png_uint_32 (png_const_structrp, png_const_inforp, int *)"),
	export("png_set_sRGB", "void (png_const_structrp, png_inforp, int)"),
	export("png_set_sRGB_gAMA_and_cHRM", "void (png_const_structrp, png_inforp, int)"),
	export("png_get_iCCP", "png_uint_32 (png_const_structrp, png_inforp, png_charpp, int *, png_bytepp, png_uint_32 *)"),
	export("png_set_iCCP", "void (png_const_structrp, png_inforp, png_const_charp, int, png_const_bytep, png_uint_32)"),
	export("png_get_sPLT", "int (png_const_structrp, png_inforp, png_sPLT_tpp)"),
	export("png_set_sPLT", "void (png_const_structrp, png_inforp, png_const_sPLT_tp, int)"),
	export("png_get_text", "int (png_const_structrp, png_inforp, png_textp *, int *)"),
	export("png_set_text", "void (png_const_structrp, png_inforp, png_const_textp, int)"),
	export("png_get_tIME", "png_uint_32 (png_const_structrp, png_inforp, png_timep *)"),
	export("png_set_tIME", "void (png_const_structrp, png_inforp, png_const_timep)"),
	export("png_get_tRNS", "png_uint_32 (png_const_structrp, png_inforp, png_bytep *, int *, png_color_16p *)"),
	export("png_set_tRNS", "void (png_structrp, png_inforp, png_const_bytep, int, png_const_color_16p)"),
	export("png_get_sCAL", "png_uint_32 (png_const_structrp, png_const_inforp, int *, double *, double *)"),
	export("png_get_sCAL_fixed", "png_uint_32 (png_const_structrp, png_const_inforp, int *, png_fixed_point *, png_fixed_point *)"),
	export("png_get_sCAL_s", "png_uint_32 (png_const_structrp, png_const_inforp, int *, png_charpp, png_charpp)"),
	export("png_set_sCAL", "void (png_const_structrp, png_inforp, int, double, double)"),
	export("png_set_sCAL_fixed", "void (png_const_structrp, png_inforp, int, png_fixed_point, png_fixed_point)"),
	export("png_set_sCAL_s", "void (png_const_structrp, png_inforp, int, png_const_charp, png_const_charp)"),

	// Unknown chunks
	export("png_set_keep_unknown_chunks", "void (png_structrp, int, png_const_bytep, int)"),
	export("png_handle_as_unknown", "int (png_const_structrp, png_const_bytep)"),
	export("png_set_unknown_chunks", "void (png_const_structrp, png_inforp, png_const_unknown_chunkp, int)"),
	export("png_set_unknown_chunk_location", "void (png_const_structrp, png_inforp, int, int)"),
	export("png_get_unknown_chunks", "int (png_const_structrp, png_inforp, png_unknown_chunkpp)"),

	// Byte order helpers
	export("png_get_uint_32", "png_uint_32 (png_const_bytep)"),
	export("png_get_uint_16", "png_uint_16 (png_const_bytep)"),
	export("png_get_int_32", "png_int_32 (png_const_bytep)"),
	export("png_get_uint_31", "png_uint_32 (png_const_structrp, png_const_bytep)"),
	export("png_save_uint_32", "void (png_bytep, png_uint_32)"),
	export("png_save_int_32", "void (png_bytep, png_int_32)"),
	export("png_save_uint_16", "void (png_bytep, unsigned int)"),

	// Simplified API
	export("png_image_begin_read_from_file", "int (png_imagep, const char *)"),
	export("png_image_begin_read_from_memory", "int (png_imagep, png_const_voidp, size_t)"),
	export("png_image_finish_read", "int (png_imagep, png_const_colorp, void *, png_int_32, void *)"),
	export("png_image_free", "void (png_imagep)"),
	export("png_image_write_to_file", "int (png_imagep, const char *, int, const void *, png_int_32, const void *)"),
	export("png_image_write_to_memory", "int (png_imagep, void *, png_alloc_size_t *, int, const void *, png_int_32, const void *)"),
}
